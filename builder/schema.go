package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oaswrite/oaswrite/docvalue"
	"github.com/oaswrite/oaswrite/oas"
)

// SchemaBuilder accumulates the fields of a schema node and freezes them
// into an immutable oas.Schema via Build. Inputs that fail to convert or
// resolve are recorded and reported together when Build is called; a
// failed Build never returns a partial schema.
//
// Builders are single-caller accumulators: not safe for concurrent use.
type SchemaBuilder struct {
	registry *Registry
	schema   oas.Schema
	errs     BuildErrors
}

// NewSchema creates an empty schema builder.
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{}
}

// Object creates a builder for an object schema.
func Object() *SchemaBuilder {
	return NewSchema().Type(oas.TypeObject)
}

// Array creates a builder for an array schema with the given item input.
func Array(items any) *SchemaBuilder {
	return NewSchema().Type(oas.TypeArray).Items(items)
}

// String creates a builder for a string schema.
func String() *SchemaBuilder {
	return NewSchema().Type(oas.TypeString)
}

// Integer creates a builder for an integer schema.
func Integer() *SchemaBuilder {
	return NewSchema().Type(oas.TypeInteger)
}

// Number creates a builder for a number schema.
func Number() *SchemaBuilder {
	return NewSchema().Type(oas.TypeNumber)
}

// Boolean creates a builder for a boolean schema.
func Boolean() *SchemaBuilder {
	return NewSchema().Type(oas.TypeBoolean)
}

// RefSchema creates a builder for a pure reference node pointing at the
// canonicalized input name or path.
func RefSchema(nameOrPath string) *SchemaBuilder {
	b := NewSchema()
	if nameOrPath == "" {
		b.addError(&BuildError{Component: ComponentSchema, Field: "$ref", Message: "empty reference"})
		return b
	}
	b.schema.Ref = CanonicalRef(nameOrPath)
	return b
}

// WithRegistry attaches the type registry consulted when reference inputs
// are plain values of registered types. Nested inline builders inherit it.
func (b *SchemaBuilder) WithRegistry(r *Registry) *SchemaBuilder {
	b.registry = r
	return b
}

// Type sets the JSON type of the schema.
func (b *SchemaBuilder) Type(t oas.Type) *SchemaBuilder {
	b.schema.Type = t
	return b
}

// Format sets the format annotation.
func (b *SchemaBuilder) Format(format string) *SchemaBuilder {
	b.schema.Format = format
	return b
}

// Title sets the title.
func (b *SchemaBuilder) Title(title string) *SchemaBuilder {
	b.schema.Title = title
	return b
}

// Description sets the description.
func (b *SchemaBuilder) Description(desc string) *SchemaBuilder {
	b.schema.Description = desc
	return b
}

// Minimum sets the inclusive minimum.
func (b *SchemaBuilder) Minimum(min float64) *SchemaBuilder {
	b.schema.Minimum = &min
	return b
}

// ExclusiveMinimum sets the minimum and marks it exclusive.
func (b *SchemaBuilder) ExclusiveMinimum(min float64) *SchemaBuilder {
	b.schema.Minimum = &min
	b.schema.ExclusiveMinimum = true
	return b
}

// Maximum sets the inclusive maximum.
func (b *SchemaBuilder) Maximum(max float64) *SchemaBuilder {
	b.schema.Maximum = &max
	return b
}

// ExclusiveMaximum sets the maximum and marks it exclusive.
func (b *SchemaBuilder) ExclusiveMaximum(max float64) *SchemaBuilder {
	b.schema.Maximum = &max
	b.schema.ExclusiveMaximum = true
	return b
}

// MultipleOf sets the multipleOf constraint.
func (b *SchemaBuilder) MultipleOf(n float64) *SchemaBuilder {
	b.schema.MultipleOf = &n
	return b
}

// MinLength sets the minimum string length.
func (b *SchemaBuilder) MinLength(n int) *SchemaBuilder {
	b.schema.MinLength = &n
	return b
}

// MaxLength sets the maximum string length.
func (b *SchemaBuilder) MaxLength(n int) *SchemaBuilder {
	b.schema.MaxLength = &n
	return b
}

// Pattern sets the string pattern constraint.
func (b *SchemaBuilder) Pattern(pattern string) *SchemaBuilder {
	b.schema.Pattern = pattern
	return b
}

// Property declares a named property. Declaration order is preserved in
// both encodings. The input follows the reference resolution rules; a
// resolved pointer becomes a reference node in the property slot.
func (b *SchemaBuilder) Property(name string, input any) *SchemaBuilder {
	if b.schema.Properties == nil {
		b.schema.Properties = oas.NewOrderedMap[*oas.Schema]()
	}
	ref, err := b.resolve(input)
	if err != nil {
		b.resolveError(fmt.Sprintf("property %q", name), err)
		return b
	}
	b.schema.Properties.Set(name, refToSchema(ref))
	return b
}

// Properties ensures the properties map exists, so a schema can carry an
// explicitly empty property set (encoded as {}, not omitted).
func (b *SchemaBuilder) Properties() *SchemaBuilder {
	if b.schema.Properties == nil {
		b.schema.Properties = oas.NewOrderedMap[*oas.Schema]()
	}
	return b
}

// Required declares the required property names, in the given order. The
// order is independent of property declaration order, and membership is
// the caller's responsibility.
func (b *SchemaBuilder) Required(names ...string) *SchemaBuilder {
	required := make([]string, len(names))
	copy(required, names)
	b.schema.Required = required
	return b
}

// Items sets the array item shape: one input for a uniform array, several
// for a fixed-position tuple.
func (b *SchemaBuilder) Items(inputs ...any) *SchemaBuilder {
	if len(inputs) == 0 {
		b.addError(&BuildError{Component: ComponentSchema, Field: "items", Message: "at least one item input is required"})
		return b
	}
	refs := make([]oas.SchemaRef, 0, len(inputs))
	for i, input := range inputs {
		ref, err := b.resolve(input)
		if err != nil {
			b.resolveError(fmt.Sprintf("items[%d]", i), err)
			return b
		}
		refs = append(refs, ref)
	}
	if len(refs) == 1 {
		b.schema.Items = oas.SingleItems(refs[0])
	} else {
		b.schema.Items = oas.TupleItems(refs...)
	}
	return b
}

// AdditionalProperties sets the boolean additional-properties policy.
func (b *SchemaBuilder) AdditionalProperties(allowed bool) *SchemaBuilder {
	b.schema.AdditionalProperties = oas.AllowAdditional(allowed)
	return b
}

// AdditionalPropertiesSchema constrains additional properties with a
// schema resolved from the input.
func (b *SchemaBuilder) AdditionalPropertiesSchema(input any) *SchemaBuilder {
	ref, err := b.resolve(input)
	if err != nil {
		b.resolveError("additionalProperties", err)
		return b
	}
	b.schema.AdditionalProperties = oas.AdditionalSchema(refToSchema(ref))
	return b
}

// Enum sets the allowed values. Native values are converted at this call
// site; an unsupported value is reported from Build with this location.
func (b *SchemaBuilder) Enum(values ...any) *SchemaBuilder {
	enum := make([]docvalue.Value, 0, len(values))
	for i, v := range values {
		converted, err := docvalue.FromNative(v)
		if err != nil {
			b.conversionError(fmt.Sprintf("enum[%d]", i), err)
			return b
		}
		enum = append(enum, converted)
	}
	b.schema.Enum = enum
	return b
}

// Const fixes the schema to a single value.
func (b *SchemaBuilder) Const(value any) *SchemaBuilder {
	converted, err := docvalue.FromNative(value)
	if err != nil {
		b.conversionError("const", err)
		return b
	}
	b.schema.Const = &converted
	return b
}

// Default sets the default value.
func (b *SchemaBuilder) Default(value any) *SchemaBuilder {
	converted, err := docvalue.FromNative(value)
	if err != nil {
		b.conversionError("default", err)
		return b
	}
	b.schema.Default = &converted
	return b
}

// Example sets the example payload.
func (b *SchemaBuilder) Example(value any) *SchemaBuilder {
	converted, err := docvalue.FromNative(value)
	if err != nil {
		b.conversionError("example", err)
		return b
	}
	b.schema.Example = &converted
	return b
}

// NamedExample attaches a named example built with an ExampleBuilder.
func (b *SchemaBuilder) NamedExample(name string, eb *ExampleBuilder) *SchemaBuilder {
	if b.schema.Examples == nil {
		b.schema.Examples = oas.NewOrderedMap[*oas.Example]()
	}
	example, err := eb.Build()
	if err != nil {
		b.addError(&BuildError{
			Component: ComponentSchema,
			Field:     fmt.Sprintf("examples[%q]", name),
			Message:   "example failed to build",
			Cause:     err,
		})
		return b
	}
	b.schema.Examples.Set(name, example)
	return b
}

// AllOf appends composition members resolved from the inputs, preserving
// order. A *CompositionBuilder input splices its accumulated list.
func (b *SchemaBuilder) AllOf(inputs ...any) *SchemaBuilder {
	b.schema.AllOf = b.appendComposition("allOf", b.schema.AllOf, inputs)
	return b
}

// OneOf appends exclusive-union members resolved from the inputs.
func (b *SchemaBuilder) OneOf(inputs ...any) *SchemaBuilder {
	b.schema.OneOf = b.appendComposition("oneOf", b.schema.OneOf, inputs)
	return b
}

// AnyOf appends inclusive-union members resolved from the inputs.
func (b *SchemaBuilder) AnyOf(inputs ...any) *SchemaBuilder {
	b.schema.AnyOf = b.appendComposition("anyOf", b.schema.AnyOf, inputs)
	return b
}

// Not sets the single negated schema reference.
func (b *SchemaBuilder) Not(input any) *SchemaBuilder {
	ref, err := b.resolve(input)
	if err != nil {
		b.resolveError("not", err)
		return b
	}
	b.schema.Not = &ref
	return b
}

// Discriminator attaches a discriminator built with a DiscriminatorBuilder.
func (b *SchemaBuilder) Discriminator(db *DiscriminatorBuilder) *SchemaBuilder {
	if db.registry == nil {
		db.registry = b.registry
	}
	d, err := db.Build()
	if err != nil {
		var buildErr *BuildError
		if errors.As(err, &buildErr) {
			b.addError(buildErr)
		} else {
			b.addError(&BuildError{
				Component: ComponentSchema,
				Field:     "discriminator",
				Message:   "discriminator failed to build",
				Cause:     err,
			})
		}
		return b
	}
	b.schema.Discriminator = d
	return b
}

// Extension sets a vendor extension field. Extension names must carry the
// "x-" prefix; the value is converted like an example payload.
func (b *SchemaBuilder) Extension(name string, value any) *SchemaBuilder {
	if !strings.HasPrefix(name, "x-") {
		b.addError(&BuildError{
			Component: ComponentSchema,
			Field:     name,
			Message:   `extension names must start with "x-"`,
		})
		return b
	}
	converted, err := docvalue.FromNative(value)
	if err != nil {
		b.conversionError(name, err)
		return b
	}
	if b.schema.Extensions == nil {
		b.schema.Extensions = oas.NewOrderedMap[docvalue.Value]()
	}
	b.schema.Extensions.Set(name, converted)
	return b
}

// Build freezes the accumulated state into an immutable schema snapshot.
// Any input error recorded during accumulation aborts the build; the
// returned schema is a deep copy, so further builder mutation never
// aliases it.
func (b *SchemaBuilder) Build() (*oas.Schema, error) {
	if err := b.errs.asError(); err != nil {
		return nil, err
	}
	return b.schema.Clone(), nil
}

// MustBuild is Build that panics on error, for statically known inputs.
func (b *SchemaBuilder) MustBuild() *oas.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *SchemaBuilder) appendComposition(field string, list []oas.SchemaRef, inputs []any) []oas.SchemaRef {
	for i, input := range inputs {
		if cb, ok := input.(*CompositionBuilder); ok {
			if cb.registry == nil {
				cb.registry = b.registry
			}
			refs, err := cb.Build()
			if err != nil {
				b.resolveError(fmt.Sprintf("%s[%d]", field, i), err)
				continue
			}
			list = append(list, refs...)
			continue
		}
		ref, err := b.resolve(input)
		if err != nil {
			b.resolveError(fmt.Sprintf("%s[%d]", field, i), err)
			continue
		}
		list = append(list, ref)
	}
	return list
}

func (b *SchemaBuilder) resolve(input any) (oas.SchemaRef, error) {
	return b.registry.resolve(input)
}

func (b *SchemaBuilder) addError(err *BuildError) {
	b.errs = append(b.errs, err)
}

func (b *SchemaBuilder) resolveError(field string, err error) {
	b.addError(&BuildError{
		Component: ComponentSchema,
		Field:     field,
		Message:   "reference input did not resolve",
		Cause:     err,
	})
}

func (b *SchemaBuilder) conversionError(field string, err error) {
	b.addError(&BuildError{
		Component: ComponentSchema,
		Field:     field,
		Message:   "value is not representable as a document value",
		Cause:     err,
	})
}

// refToSchema converts a resolved reference into a schema node for slots
// that hold schemas rather than refs (properties, additionalProperties).
func refToSchema(ref oas.SchemaRef) *oas.Schema {
	if ref.IsRef() {
		return &oas.Schema{Ref: ref.Ref()}
	}
	return ref.Schema()
}
