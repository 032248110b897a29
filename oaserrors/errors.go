// Package oaserrors provides structured error types for the oaswrite library.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors raised while assembling a document.
//
// # Error Categories
//
//   - ConversionError: a native Go value could not be converted to a document value
//   - ResolveError: a schema reference input could not be resolved
//   - build errors: reported by the builder package, matching ErrBuild
//
// # Usage with errors.Is
//
//	schema, err := builder.Object().Example(make(chan int)).Build()
//	if errors.Is(err, oaserrors.ErrConversion) {
//	    // the example value had an unsupported Go type
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrBuild indicates a builder was finalized with invalid state.
	ErrBuild = errors.New("build error")

	// ErrConversion indicates a native value could not be converted
	// to a document value.
	ErrConversion = errors.New("conversion error")

	// ErrResolve indicates a schema reference input could not be resolved.
	ErrResolve = errors.New("resolve error")

	// ErrMissingDiscriminatorProperty indicates a discriminator was built
	// without a property name.
	ErrMissingDiscriminatorProperty = errors.New("discriminator propertyName is required")
)

// ConversionError reports a failure converting a native Go value into a
// document value. It carries the path into the native structure where the
// unsupported value was found, so callers get a precise location for the
// bad input.
type ConversionError struct {
	// Path locates the offending value inside the supplied structure,
	// e.g. "$.items[2].name". "$" is the root.
	Path string
	// GoType is the Go type of the unsupported value, e.g. "chan int".
	GoType string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("conversion: %s at %s", e.Message, e.Path)
	if e.GoType != "" {
		msg += fmt.Sprintf(" (Go type %s)", e.GoType)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ResolveError reports a failure turning a caller-supplied reference input
// into a schema reference.
type ResolveError struct {
	// Input is a description of the input that failed to resolve.
	Input string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	msg := "resolve"
	if e.Input != "" {
		msg += " " + e.Input
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ResolveError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ResolveError) Is(target error) bool {
	return target == ErrResolve
}
