package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaswrite/oaswrite/oas"
)

func refPaths(refs []oas.SchemaRef) []string {
	paths := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.IsRef() {
			paths = append(paths, r.Ref())
		} else {
			paths = append(paths, "<inline>")
		}
	}
	return paths
}

func TestCompositionBuilder_PreservesOrder(t *testing.T) {
	refs, err := AllOf("Base", "Mixin", "Extra").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#/components/schemas/Base",
		"#/components/schemas/Mixin",
		"#/components/schemas/Extra",
	}, refPaths(refs))
}

func TestCompositionBuilder_DuplicatesAllowed(t *testing.T) {
	refs, err := OneOf("A", "A").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#/components/schemas/A",
		"#/components/schemas/A",
	}, refPaths(refs))
}

func TestCompositionBuilder_EmptyIsNil(t *testing.T) {
	refs, err := AnyOf().Build()
	require.NoError(t, err)
	assert.Nil(t, refs)
}

func TestCompositionBuilder_MixedInputs(t *testing.T) {
	refs, err := OneOf("Cat").
		Add(String(), "#/components/schemas/Dog").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"#/components/schemas/Cat",
		"<inline>",
		"#/components/schemas/Dog",
	}, refPaths(refs))
	assert.Equal(t, oas.TypeString, refs[1].Schema().Type)
}

func TestCompositionBuilder_BadInput(t *testing.T) {
	_, err := AllOf(42).Build()
	require.Error(t, err)
}

func TestCompositionBuilder_Registry(t *testing.T) {
	type Shape struct{}
	reg := NewRegistry()
	reg.RegisterAs("Shape", Shape{})

	refs, err := AnyOf(Shape{}).WithRegistry(reg).Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"#/components/schemas/Shape"}, refPaths(refs))
}

func TestSchemaBuilder_CompositionSplice(t *testing.T) {
	s := build(t, NewSchema().OneOf(OneOf("Dog", "Cat").Add("Bird")))
	assert.Equal(t, []string{
		"#/components/schemas/Dog",
		"#/components/schemas/Cat",
		"#/components/schemas/Bird",
	}, refPaths(s.OneOf))
}

func TestSchemaBuilder_InheritanceShape(t *testing.T) {
	s := build(t, NewSchema().AllOf(
		"Base",
		Object().Property("extra", String()),
	))

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"allOf":[{"$ref":"#/components/schemas/Base"},{"type":"object","properties":{"extra":{"type":"string"}}}]}`,
		string(data))
}

func TestSchemaBuilder_EmptyCompositionOmitted(t *testing.T) {
	s := build(t, Object().AllOf())
	assert.Nil(t, s.AllOf)

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"type":"object"}`, string(data))
}
