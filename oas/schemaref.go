package oas

// SchemaRef is either a reference pointer or an inline schema. It is the
// canonical result of reference resolution, used by composition lists,
// the not slot, and array items.
//
// Consumers must handle both variants; the encoder renders a pointer as
// a {"$ref": path} object and an inline variant as the schema itself.
type SchemaRef struct {
	ref    string
	inline *Schema
}

// RefTo returns a pointer reference to the given canonical path.
// The path must be non-empty; use builder.CanonicalRef to normalize
// caller-supplied inputs first.
func RefTo(path string) SchemaRef {
	if path == "" {
		panic("oas: RefTo with empty path")
	}
	return SchemaRef{ref: path}
}

// InlineSchema returns an inline reference wrapping s.
func InlineSchema(s *Schema) SchemaRef {
	if s == nil {
		panic("oas: InlineSchema with nil schema")
	}
	return SchemaRef{inline: s}
}

// IsRef reports whether r is the pointer variant.
func (r SchemaRef) IsRef() bool {
	return r.ref != ""
}

// IsZero reports whether r holds neither variant.
func (r SchemaRef) IsZero() bool {
	return r.ref == "" && r.inline == nil
}

// Ref returns the canonical path for the pointer variant, or "" for the
// inline variant.
func (r SchemaRef) Ref() string {
	return r.ref
}

// Schema returns the inline schema, or nil for the pointer variant.
func (r SchemaRef) Schema() *Schema {
	return r.inline
}

// Equal reports whether two refs point at the same path or wrap the same
// schema value.
func (r SchemaRef) Equal(o SchemaRef) bool {
	if r.ref != o.ref {
		return false
	}
	if (r.inline == nil) != (o.inline == nil) {
		return false
	}
	return r.inline == o.inline || r.ref != ""
}

// clone deep-copies the inline variant; pointer variants are value-like
// already.
func (r SchemaRef) clone() SchemaRef {
	if r.inline != nil {
		return SchemaRef{inline: r.inline.Clone()}
	}
	return r
}
