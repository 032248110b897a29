package oas

import (
	"github.com/oaswrite/oaswrite/docvalue"
)

// Type is the JSON type of a schema node.
type Type string

// Schema type values.
const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
)

// Schema is one node of the recursive schema description model.
//
// A node is either a pure reference (Ref set, structural fields absent by
// convention) or a structural definition. The model does not forbid mixing
// the two, but consumers should not rely on both being honored.
//
// A Schema produced by a builder's Build() is an immutable snapshot: treat
// it as read-only and Clone before modifying. Built schemas are safe for
// concurrent reads.
type Schema struct {
	// Ref, when set, makes this node a reference to another schema by
	// canonical path (e.g. "#/components/schemas/User").
	Ref string

	Type        Type
	Format      string
	Title       string
	Description string
	Default     *docvalue.Value

	// Numeric constraints.
	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool

	// String constraints.
	MaxLength *int
	MinLength *int
	Pattern   string

	// Array shape: a single uniform item schema or a fixed tuple.
	Items *Items

	// Object shape. A nil Properties map means the field was never set;
	// an allocated empty map renders as {}.
	Properties           *OrderedMap[*Schema]
	Required             []string
	AdditionalProperties *AdditionalProperties

	// Value constraints.
	Enum  []docvalue.Value
	Const *docvalue.Value

	// Composition. Lists hold resolved references in caller order;
	// an empty built list is omitted from output, never rendered as [].
	AllOf []SchemaRef
	OneOf []SchemaRef
	AnyOf []SchemaRef
	Not   *SchemaRef

	Discriminator *Discriminator

	Example  *docvalue.Value
	Examples *OrderedMap[*Example]

	// Extensions holds x-* vendor extension fields.
	Extensions *OrderedMap[docvalue.Value]
}

// IsRef reports whether this node is a pure reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// Items describes the items of an array schema: either a single uniform
// schema or a fixed, position-significant tuple.
type Items struct {
	single *SchemaRef
	tuple  []SchemaRef
}

// SingleItems returns an Items for a uniform array.
func SingleItems(r SchemaRef) *Items {
	return &Items{single: &r}
}

// TupleItems returns an Items for a fixed-position tuple.
func TupleItems(refs ...SchemaRef) *Items {
	tuple := make([]SchemaRef, len(refs))
	copy(tuple, refs)
	return &Items{tuple: tuple}
}

// IsTuple reports whether it holds the tuple variant.
func (it *Items) IsTuple() bool {
	return it != nil && it.single == nil
}

// Single returns the uniform item schema reference.
func (it *Items) Single() SchemaRef {
	if it == nil || it.single == nil {
		return SchemaRef{}
	}
	return *it.single
}

// Tuple returns the tuple members in order.
func (it *Items) Tuple() []SchemaRef {
	if it == nil {
		return nil
	}
	return it.tuple
}

func (it *Items) clone() *Items {
	if it == nil {
		return nil
	}
	if it.single != nil {
		r := it.single.clone()
		return &Items{single: &r}
	}
	tuple := make([]SchemaRef, len(it.tuple))
	for i, r := range it.tuple {
		tuple[i] = r.clone()
	}
	return &Items{tuple: tuple}
}

// AdditionalProperties is either a boolean policy or a schema constraining
// additional object properties.
type AdditionalProperties struct {
	allowed *bool
	schema  *Schema
}

// AllowAdditional returns the boolean variant.
func AllowAdditional(ok bool) *AdditionalProperties {
	return &AdditionalProperties{allowed: &ok}
}

// AdditionalSchema returns the schema variant.
func AdditionalSchema(s *Schema) *AdditionalProperties {
	return &AdditionalProperties{schema: s}
}

// IsSchema reports whether ap holds the schema variant.
func (ap *AdditionalProperties) IsSchema() bool {
	return ap != nil && ap.schema != nil
}

// Allowed returns the boolean payload of the boolean variant.
func (ap *AdditionalProperties) Allowed() bool {
	return ap != nil && ap.allowed != nil && *ap.allowed
}

// Schema returns the schema payload, or nil for the boolean variant.
func (ap *AdditionalProperties) Schema() *Schema {
	if ap == nil {
		return nil
	}
	return ap.schema
}

func (ap *AdditionalProperties) clone() *AdditionalProperties {
	if ap == nil {
		return nil
	}
	out := &AdditionalProperties{}
	if ap.allowed != nil {
		b := *ap.allowed
		out.allowed = &b
	}
	if ap.schema != nil {
		out.schema = ap.schema.Clone()
	}
	return out
}
