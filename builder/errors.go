package builder

import (
	"fmt"
	"strings"

	"github.com/oaswrite/oaswrite/oaserrors"
)

// ComponentType identifies the kind of builder where an error occurred.
type ComponentType string

const (
	// ComponentSchema indicates an error in a schema builder.
	ComponentSchema ComponentType = "schema"
	// ComponentComposition indicates an error in a composition builder.
	ComponentComposition ComponentType = "composition"
	// ComponentDiscriminator indicates an error in a discriminator builder.
	ComponentDiscriminator ComponentType = "discriminator"
	// ComponentExample indicates an error in an example builder.
	ComponentExample ComponentType = "example"
	// ComponentReference indicates an error resolving a reference input.
	ComponentReference ComponentType = "reference"
	// ComponentRegistry indicates an error in the type registry.
	ComponentRegistry ComponentType = "registry"
)

// BuildError is a structured error from the builder package. It records
// where in the fluent call sequence the bad input was supplied, so a
// failed Build() points at the call to fix.
type BuildError struct {
	// Component is the kind of builder where the error occurred.
	Component ComponentType
	// Field is the specific builder field, e.g. "propertyName".
	Field string
	// Message describes the error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")
	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}
	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type. All BuildErrors match
// oaserrors.ErrBuild, so callers can detect builder misuse with a single
// errors.Is check.
func (e *BuildError) Is(target error) bool {
	return target == oaserrors.ErrBuild
}

// BuildErrors is a collection of BuildError with formatting support.
type BuildErrors []*BuildError

// Error implements the error interface with a formatted multi-error message.
func (errs BuildErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "builder: %d error(s):\n", len(errs))
	for _, e := range errs {
		sb.WriteString("  - ")
		sb.WriteString(strings.TrimPrefix(e.Error(), "builder: "))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors for errors.Is and errors.As traversal.
func (errs BuildErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// asError collapses an accumulated error list into a single error value.
func (errs BuildErrors) asError() error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}
