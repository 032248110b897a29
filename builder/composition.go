package builder

import (
	"fmt"

	"github.com/oaswrite/oaswrite/oas"
)

// CompositionBuilder accumulates an ordered list of schema references for
// an allOf, oneOf, or anyOf composition. Order is caller-significant and
// preserved exactly; duplicates are permitted; no structural compatibility
// between members is checked, that is the concern of whatever later
// validates instance data.
//
// A composition built with zero members yields a nil list, which the
// encoder omits entirely, so an empty composition never serializes as [].
type CompositionBuilder struct {
	kind     string
	registry *Registry
	pending  []any
	errs     BuildErrors
}

// AllOf creates an intersection composition from the given inputs.
func AllOf(inputs ...any) *CompositionBuilder {
	return newComposition("allOf", inputs)
}

// OneOf creates an exclusive-union composition from the given inputs.
func OneOf(inputs ...any) *CompositionBuilder {
	return newComposition("oneOf", inputs)
}

// AnyOf creates an inclusive-union composition from the given inputs.
func AnyOf(inputs ...any) *CompositionBuilder {
	return newComposition("anyOf", inputs)
}

func newComposition(kind string, inputs []any) *CompositionBuilder {
	c := &CompositionBuilder{kind: kind}
	return c.Add(inputs...)
}

// WithRegistry attaches the type registry used to resolve plain-value
// inputs of registered types.
func (c *CompositionBuilder) WithRegistry(r *Registry) *CompositionBuilder {
	c.registry = r
	return c
}

// Add appends member inputs, in order.
func (c *CompositionBuilder) Add(inputs ...any) *CompositionBuilder {
	c.pending = append(c.pending, inputs...)
	return c
}

// Build resolves all accumulated inputs and returns the frozen member
// list. Resolution happens at build time so that a registry attached
// after Add calls still applies.
func (c *CompositionBuilder) Build() ([]oas.SchemaRef, error) {
	refs := make([]oas.SchemaRef, 0, len(c.pending))
	var errs BuildErrors
	errs = append(errs, c.errs...)

	for i, input := range c.pending {
		ref, err := c.registry.resolve(input)
		if err != nil {
			errs = append(errs, &BuildError{
				Component: ComponentComposition,
				Field:     fmt.Sprintf("%s[%d]", c.kind, i),
				Message:   "reference input did not resolve",
				Cause:     err,
			})
			continue
		}
		refs = append(refs, ref)
	}

	if err := errs.asError(); err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, nil
	}
	return refs, nil
}
