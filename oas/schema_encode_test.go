package oas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaswrite/oaswrite/docvalue"
)

func marshalJSON(t *testing.T, s *Schema) string {
	t.Helper()
	data, err := s.MarshalJSON()
	require.NoError(t, err)
	return string(data)
}

func TestSchema_UnsetFieldsOmitted(t *testing.T) {
	assert.Equal(t, `{}`, marshalJSON(t, &Schema{}))
}

func TestSchema_ScalarFields(t *testing.T) {
	s := &Schema{
		Type:        TypeString,
		Format:      "email",
		Description: "contact address",
		Pattern:     ".+@.+",
	}
	assert.Equal(t,
		`{"type":"string","format":"email","description":"contact address","pattern":".+@.+"}`,
		marshalJSON(t, s))
}

func TestSchema_NumericConstraints(t *testing.T) {
	min, max, mult := 0.0, 10.5, 0.5
	s := &Schema{
		Type:             TypeNumber,
		MultipleOf:       &mult,
		Maximum:          &max,
		Minimum:          &min,
		ExclusiveMinimum: true,
	}
	assert.Equal(t,
		`{"type":"number","multipleOf":0.5,"maximum":10.5,"minimum":0.0,"exclusiveMinimum":true}`,
		marshalJSON(t, s))
}

func TestSchema_StringConstraints(t *testing.T) {
	minLen, maxLen := 1, 64
	s := &Schema{Type: TypeString, MaxLength: &maxLen, MinLength: &minLen}
	assert.Equal(t, `{"type":"string","maxLength":64,"minLength":1}`, marshalJSON(t, s))
}

func TestSchema_PureReference(t *testing.T) {
	s := &Schema{Ref: "#/components/schemas/User"}
	assert.Equal(t, `{"$ref":"#/components/schemas/User"}`, marshalJSON(t, s))
}

func TestSchema_PropertiesOrderPreserved(t *testing.T) {
	props := NewOrderedMap[*Schema]()
	props.Set("zebra", &Schema{Type: TypeString})
	props.Set("apple", &Schema{Type: TypeInteger})

	s := &Schema{Type: TypeObject, Properties: props}
	assert.Equal(t,
		`{"type":"object","properties":{"zebra":{"type":"string"},"apple":{"type":"integer"}}}`,
		marshalJSON(t, s))
}

func TestSchema_EmptyVsAbsent(t *testing.T) {
	// Never set: key absent.
	assert.Equal(t, `{"type":"object"}`, marshalJSON(t, &Schema{Type: TypeObject}))

	// Explicitly empty: key present with empty literal.
	s := &Schema{Type: TypeObject, Properties: NewOrderedMap[*Schema]()}
	assert.Equal(t, `{"type":"object","properties":{}}`, marshalJSON(t, s))

	s = &Schema{Type: TypeObject, Required: []string{}}
	assert.Equal(t, `{"type":"object","required":[]}`, marshalJSON(t, s))

	s = &Schema{Type: TypeString, Enum: []docvalue.Value{}}
	assert.Equal(t, `{"type":"string","enum":[]}`, marshalJSON(t, s))
}

func TestSchema_ItemsSingle(t *testing.T) {
	s := &Schema{
		Type:  TypeArray,
		Items: SingleItems(RefTo("#/components/schemas/Pet")),
	}
	assert.Equal(t,
		`{"type":"array","items":{"$ref":"#/components/schemas/Pet"}}`,
		marshalJSON(t, s))
}

func TestSchema_ItemsTuple(t *testing.T) {
	s := &Schema{
		Type: TypeArray,
		Items: TupleItems(
			InlineSchema(&Schema{Type: TypeString}),
			InlineSchema(&Schema{Type: TypeInteger}),
		),
	}
	assert.Equal(t,
		`{"type":"array","items":[{"type":"string"},{"type":"integer"}]}`,
		marshalJSON(t, s))
}

func TestSchema_AdditionalProperties(t *testing.T) {
	s := &Schema{Type: TypeObject, AdditionalProperties: AllowAdditional(false)}
	assert.Equal(t, `{"type":"object","additionalProperties":false}`, marshalJSON(t, s))

	s = &Schema{Type: TypeObject, AdditionalProperties: AdditionalSchema(&Schema{Type: TypeString})}
	assert.Equal(t,
		`{"type":"object","additionalProperties":{"type":"string"}}`,
		marshalJSON(t, s))
}

func TestSchema_EnumAndConst(t *testing.T) {
	c := docvalue.Str("fixed")
	s := &Schema{
		Type: TypeString,
		Enum: []docvalue.Value{docvalue.Str("a"), docvalue.Str("b")},
	}
	assert.Equal(t, `{"type":"string","enum":["a","b"]}`, marshalJSON(t, s))

	s = &Schema{Type: TypeString, Const: &c}
	assert.Equal(t, `{"type":"string","const":"fixed"}`, marshalJSON(t, s))
}

func TestSchema_InheritanceComposition(t *testing.T) {
	// allOf of a base reference and an inline extension must render as an
	// array of two entries in declaration order.
	extra := NewOrderedMap[*Schema]()
	extra.Set("extra", &Schema{Type: TypeString})

	s := &Schema{
		AllOf: []SchemaRef{
			RefTo("#/components/schemas/Base"),
			InlineSchema(&Schema{Type: TypeObject, Properties: extra}),
		},
	}
	assert.Equal(t,
		`{"allOf":[{"$ref":"#/components/schemas/Base"},{"type":"object","properties":{"extra":{"type":"string"}}}]}`,
		marshalJSON(t, s))
}

func TestSchema_CompositionVariants(t *testing.T) {
	oneOf := &Schema{OneOf: []SchemaRef{RefTo("#/components/schemas/Cat"), RefTo("#/components/schemas/Dog")}}
	assert.Equal(t,
		`{"oneOf":[{"$ref":"#/components/schemas/Cat"},{"$ref":"#/components/schemas/Dog"}]}`,
		marshalJSON(t, oneOf))

	not := RefTo("#/components/schemas/Banned")
	s := &Schema{Not: &not}
	assert.Equal(t, `{"not":{"$ref":"#/components/schemas/Banned"}}`, marshalJSON(t, s))
}

func TestDiscriminator_Encode(t *testing.T) {
	mapping := NewOrderedMap[string]()
	mapping.Set("dog", "#/components/schemas/Dog")

	d := &Discriminator{PropertyName: "petType", Mapping: mapping}
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"propertyName":"petType","mapping":{"dog":"#/components/schemas/Dog"}}`,
		string(data))
}

func TestDiscriminator_NoMapping(t *testing.T) {
	d := &Discriminator{PropertyName: "kind"}
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"propertyName":"kind"}`, string(data))
}

func TestExample_Encode(t *testing.T) {
	v := docvalue.Map(docvalue.Pair("id", docvalue.Int(1)))
	e := &Example{Summary: "one", Value: &v}
	data, err := e.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"one","value":{"id":1}}`, string(data))
}

func TestExample_ValueAndExternalValueBothEmitted(t *testing.T) {
	v := docvalue.Int(1)
	e := &Example{Value: &v, ExternalValue: "https://example.com/v.json"}
	data, err := e.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"value":1,"externalValue":"https://example.com/v.json"}`, string(data))
}

func TestSchema_Extensions(t *testing.T) {
	ext := NewOrderedMap[docvalue.Value]()
	ext.Set("x-internal", docvalue.Bool(true))
	ext.Set("x-order", docvalue.Int(2))

	s := &Schema{Type: TypeObject, Extensions: ext}
	assert.Equal(t, `{"type":"object","x-internal":true,"x-order":2}`, marshalJSON(t, s))
}

func TestSchema_ExampleScalarFidelity(t *testing.T) {
	v := docvalue.Map(
		docvalue.Pair("yes_string", docvalue.Str("yes")),
		docvalue.Pair("real_bool", docvalue.Bool(true)),
		docvalue.Pair("count", docvalue.Int(2)),
		docvalue.Pair("ratio", docvalue.Float(0.5)),
	)
	s := &Schema{Type: TypeObject, Example: &v}
	assert.Equal(t,
		`{"type":"object","example":{"yes_string":"yes","real_bool":true,"count":2,"ratio":0.5}}`,
		marshalJSON(t, s))
}

func TestSchema_RecursiveThroughPointer(t *testing.T) {
	// A self-referential graph through a pointer reference is just a path
	// string and must encode without recursing.
	props := NewOrderedMap[*Schema]()
	props.Set("children", &Schema{
		Type:  TypeArray,
		Items: SingleItems(RefTo("#/components/schemas/Node")),
	})
	node := &Schema{Type: TypeObject, Properties: props}

	assert.Equal(t,
		`{"type":"object","properties":{"children":{"type":"array","items":{"$ref":"#/components/schemas/Node"}}}}`,
		marshalJSON(t, node))
}

func TestSchema_Clone(t *testing.T) {
	props := NewOrderedMap[*Schema]()
	props.Set("name", &Schema{Type: TypeString})
	s := &Schema{
		Type:       TypeObject,
		Properties: props,
		Required:   []string{"name"},
		AllOf:      []SchemaRef{RefTo("#/components/schemas/Base")},
	}

	c := s.Clone()
	c.Properties.Set("age", &Schema{Type: TypeInteger})
	c.Required[0] = "changed"
	c.AllOf[0] = RefTo("#/components/schemas/Other")

	assert.Equal(t, []string{"name"}, s.Properties.Keys())
	assert.Equal(t, []string{"name"}, s.Required)
	assert.Equal(t, "#/components/schemas/Base", s.AllOf[0].Ref())
}
