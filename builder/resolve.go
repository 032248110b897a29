package builder

import (
	"fmt"
	"strings"

	"github.com/oaswrite/oaswrite/oas"
	"github.com/oaswrite/oaswrite/oaserrors"
)

// CanonicalRef normalizes a caller-supplied reference string to its
// canonical form. A string that already contains a scheme separator
// ("://") or starts with "#" is used unchanged; anything else is treated
// as a bare schema name and rewritten under the local components path.
//
// The rewrite is purely syntactic: whether the target schema exists is not
// checked here.
func CanonicalRef(input string) string {
	if strings.Contains(input, "://") || strings.HasPrefix(input, "#") {
		return input
	}
	return "#/components/schemas/" + input
}

// resolve turns a caller-supplied reference input into a SchemaRef.
//
// Accepted inputs:
//   - string: bare name, explicit pointer, or external URL (canonicalized)
//   - oas.SchemaRef: passed through unchanged
//   - *oas.Schema: wrapped as an inline reference
//   - *SchemaBuilder: built and wrapped as an inline reference
//   - any other value: looked up in the registry by its dynamic type
func (r *Registry) resolve(input any) (oas.SchemaRef, error) {
	switch v := input.(type) {
	case nil:
		return oas.SchemaRef{}, &oaserrors.ResolveError{Message: "nil reference input"}

	case oas.SchemaRef:
		if v.IsZero() {
			return oas.SchemaRef{}, &oaserrors.ResolveError{Message: "zero SchemaRef"}
		}
		return v, nil

	case string:
		if v == "" {
			return oas.SchemaRef{}, &oaserrors.ResolveError{Message: "empty reference name"}
		}
		return oas.RefTo(CanonicalRef(v)), nil

	case *oas.Schema:
		if v == nil {
			return oas.SchemaRef{}, &oaserrors.ResolveError{Message: "nil schema"}
		}
		return oas.InlineSchema(v), nil

	case *SchemaBuilder:
		if v == nil {
			return oas.SchemaRef{}, &oaserrors.ResolveError{Message: "nil schema builder"}
		}
		if v.registry == nil {
			v.registry = r
		}
		schema, err := v.Build()
		if err != nil {
			return oas.SchemaRef{}, &oaserrors.ResolveError{
				Input:   "inline schema",
				Message: "inline schema failed to build",
				Cause:   err,
			}
		}
		return oas.InlineSchema(schema), nil

	default:
		name, err := r.NameFor(input)
		if err != nil {
			return oas.SchemaRef{}, err
		}
		return oas.RefTo(CanonicalRef(name)), nil
	}
}

// resolveTarget resolves a discriminator mapping target, which must
// produce a reference path rather than an inline schema.
func (r *Registry) resolveTarget(input any) (string, error) {
	ref, err := r.resolve(input)
	if err != nil {
		return "", err
	}
	if !ref.IsRef() {
		return "", &oaserrors.ResolveError{
			Input:   fmt.Sprintf("%T", input),
			Message: "discriminator mapping target must be a reference, not an inline schema",
		}
	}
	return ref.Ref(), nil
}
