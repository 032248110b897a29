package oas

import "github.com/oaswrite/oaswrite/docvalue"

// Clone returns a deep copy of the schema. Document values are immutable
// and shared; everything structural is copied.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	out := *s

	out.MultipleOf = cloneFloat(s.MultipleOf)
	out.Maximum = cloneFloat(s.Maximum)
	out.Minimum = cloneFloat(s.Minimum)
	out.MaxLength = cloneInt(s.MaxLength)
	out.MinLength = cloneInt(s.MinLength)

	out.Items = s.Items.clone()

	if s.Properties != nil {
		props := NewOrderedMap[*Schema]()
		s.Properties.Range(func(name string, prop *Schema) bool {
			props.Set(name, prop.Clone())
			return true
		})
		out.Properties = props
	}
	if s.Required != nil {
		out.Required = make([]string, len(s.Required))
		copy(out.Required, s.Required)
	}
	out.AdditionalProperties = s.AdditionalProperties.clone()

	if s.Enum != nil {
		out.Enum = make([]docvalue.Value, len(s.Enum))
		copy(out.Enum, s.Enum)
	}

	out.AllOf = cloneRefList(s.AllOf)
	out.OneOf = cloneRefList(s.OneOf)
	out.AnyOf = cloneRefList(s.AnyOf)
	if s.Not != nil {
		not := s.Not.clone()
		out.Not = &not
	}

	out.Discriminator = s.Discriminator.Clone()

	if s.Examples != nil {
		examples := NewOrderedMap[*Example]()
		s.Examples.Range(func(name string, ex *Example) bool {
			examples.Set(name, ex.Clone())
			return true
		})
		out.Examples = examples
	}

	out.Extensions = s.Extensions.Clone()

	return &out
}

func cloneRefList(refs []SchemaRef) []SchemaRef {
	if refs == nil {
		return nil
	}
	out := make([]SchemaRef, len(refs))
	for i, r := range refs {
		out[i] = r.clone()
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
