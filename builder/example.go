package builder

import (
	"github.com/oaswrite/oaswrite/docvalue"
	"github.com/oaswrite/oaswrite/oas"
)

// ExampleBuilder accumulates a named example. Value and ExternalValue are
// mutually exclusive in meaning; when both are set, value wins for local
// consumers and externalValue is still emitted alongside it.
type ExampleBuilder struct {
	example oas.Example
	errs    BuildErrors
}

// NewExample creates an empty example builder.
func NewExample() *ExampleBuilder {
	return &ExampleBuilder{}
}

// Summary sets the short summary.
func (e *ExampleBuilder) Summary(summary string) *ExampleBuilder {
	e.example.Summary = summary
	return e
}

// Description sets the long description.
func (e *ExampleBuilder) Description(desc string) *ExampleBuilder {
	e.example.Description = desc
	return e
}

// Value sets the embedded example payload, converted at this call site so
// an unsupported native value is reported with this location.
func (e *ExampleBuilder) Value(value any) *ExampleBuilder {
	converted, err := docvalue.FromNative(value)
	if err != nil {
		e.errs = append(e.errs, &BuildError{
			Component: ComponentExample,
			Field:     "value",
			Message:   "value is not representable as a document value",
			Cause:     err,
		})
		return e
	}
	e.example.Value = &converted
	return e
}

// ExternalValue sets the URI of an externally hosted example payload.
func (e *ExampleBuilder) ExternalValue(uri string) *ExampleBuilder {
	e.example.ExternalValue = uri
	return e
}

// Build freezes the accumulated state into an immutable Example.
func (e *ExampleBuilder) Build() (*oas.Example, error) {
	if err := e.errs.asError(); err != nil {
		return nil, err
	}
	return e.example.Clone(), nil
}
