package oas

import "github.com/oaswrite/oaswrite/docvalue"

// Example is a named example attached to a schema.
//
// At most one of Value and ExternalValue is meaningful. When both are set,
// Value takes precedence for local consumers and ExternalValue is emitted
// as a sibling field.
type Example struct {
	Summary       string
	Description   string
	Value         *docvalue.Value
	ExternalValue string
}

// Clone returns a copy. Document values are immutable, so the value
// pointer is shared.
func (e *Example) Clone() *Example {
	if e == nil {
		return nil
	}
	out := *e
	return &out
}
