package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaswrite/oaswrite/oaserrors"
)

type widget struct{}

func TestRegistry_RegisterDerivesName(t *testing.T) {
	r := NewRegistry()
	name := r.Register(widget{})
	assert.Equal(t, "builder.widget", name)

	got, err := r.NameFor(widget{})
	require.NoError(t, err)
	assert.Equal(t, "builder.widget", got)
}

func TestRegistry_RegisterAs(t *testing.T) {
	r := NewRegistry()
	name := r.RegisterAs("Widget", widget{})
	assert.Equal(t, "Widget", name)

	got, err := r.NameFor(&widget{})
	require.NoError(t, err)
	assert.Equal(t, "Widget", got)
}

func TestRegistry_Describe(t *testing.T) {
	r := NewRegistry()
	r.RegisterAs("Widget", widget{})
	r.Describe(widget{}, "a well-documented widget")

	assert.Equal(t, "a well-documented widget", r.DescriptionFor(widget{}))
	assert.Equal(t, "", r.DescriptionFor("unrelated"))
}

func TestRegistry_DescribeUnregisteredIsNoOp(t *testing.T) {
	type ghost struct{}
	r := NewRegistry()
	r.Describe(ghost{}, "never registered")

	// Describing must not register the type: a later lookup still fails
	// instead of resolving to a dangling ref.
	_, err := r.NameFor(ghost{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrResolve))

	_, err = r.resolve(ghost{})
	require.Error(t, err)
	assert.Equal(t, "", r.DescriptionFor(ghost{}))
}

func TestRegistry_NameForUnregistered(t *testing.T) {
	r := NewRegistry()
	_, err := r.NameFor(widget{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrResolve))
}

func TestRegistry_NameForNil(t *testing.T) {
	r := NewRegistry()
	_, err := r.NameFor(nil)
	require.Error(t, err)
}

func TestRegistry_RegisterAsNilPanics(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.RegisterAs("X", nil) })
}

func TestNamingStrategies(t *testing.T) {
	tests := []struct {
		strategy NamingStrategy
		want     string
	}{
		{NamingDefault, "builder.widget"},
		{NamingPascalCase, "BuilderWidget"},
		{NamingCamelCase, "builderWidget"},
		{NamingSnakeCase, "builder_widget"},
		{NamingKebabCase, "builder-widget"},
		{NamingTypeOnly, "widget"},
	}

	for _, tt := range tests {
		r := NewRegistry(WithNaming(tt.strategy))
		assert.Equal(t, tt.want, r.Register(widget{}), "strategy %d", tt.strategy)
	}
}

func TestNaming_AnonymousType(t *testing.T) {
	r := NewRegistry()
	name := r.Register(struct{ X int }{})
	assert.Equal(t, "AnonymousType", name)
}

func TestWithNameTemplate(t *testing.T) {
	opt, err := WithNameTemplate("{{pascal .Package}}{{.Type}}Schema")
	require.NoError(t, err)

	r := NewRegistry(opt)
	assert.Equal(t, "BuilderwidgetSchema", r.Register(widget{}))
}

func TestWithNameTemplate_Invalid(t *testing.T) {
	_, err := WithNameTemplate("{{.Type")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrBuild))

	_, err = WithNameTemplate("{{.Missing}}")
	require.Error(t, err)
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, "UserProfile", toPascalCase("user_profile"))
	assert.Equal(t, "ApiClient", toPascalCase("api-client"))
	assert.Equal(t, "userProfile", toCamelCase("UserProfile"))
	assert.Equal(t, "user_profile", toSnakeCase("UserProfile"))
	assert.Equal(t, "user-profile", toKebabCase("UserProfile"))
	assert.Equal(t, "", toPascalCase(""))
}

func TestSanitizeSchemaName(t *testing.T) {
	assert.Equal(t, "Response_User", sanitizeSchemaName("Response[User]"))
	assert.Equal(t, "Map_string_int", sanitizeSchemaName("Map[string,int]"))
	assert.Equal(t, "Plain", sanitizeSchemaName("Plain"))
}
