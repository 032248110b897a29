package builder

import (
	"fmt"
	"strings"

	"github.com/oaswrite/oaswrite/oas"
	"github.com/oaswrite/oaswrite/oaserrors"
)

// DiscriminatorBuilder accumulates a discriminator: the property that
// selects among composed union members plus an explicit value-to-schema
// mapping.
//
// Mapping entries keep insertion order; a repeated discriminant value
// keeps the position of its first occurrence and the target of its last,
// without complaint. Uniqueness is deliberately not enforced.
type DiscriminatorBuilder struct {
	registry     *Registry
	propertyName string
	mapping      []mappingEntry
	errs         BuildErrors
}

type mappingEntry struct {
	value  string
	target any
}

// NewDiscriminator creates an empty discriminator builder.
func NewDiscriminator() *DiscriminatorBuilder {
	return &DiscriminatorBuilder{}
}

// WithRegistry attaches the type registry used to resolve plain-value
// mapping targets.
func (d *DiscriminatorBuilder) WithRegistry(r *Registry) *DiscriminatorBuilder {
	d.registry = r
	return d
}

// PropertyName sets the name of the property whose value selects the
// union member.
func (d *DiscriminatorBuilder) PropertyName(name string) *DiscriminatorBuilder {
	d.propertyName = name
	return d
}

// Mapping adds one discriminant value with its target schema. The target
// goes through reference resolution, so bare names, full paths, and
// registered types are all accepted; inline schemas are not valid targets.
func (d *DiscriminatorBuilder) Mapping(value string, target any) *DiscriminatorBuilder {
	d.mapping = append(d.mapping, mappingEntry{value: value, target: target})
	return d
}

// Build freezes the accumulated state into an immutable Discriminator.
// It fails with oaserrors.ErrMissingDiscriminatorProperty when the
// property name was never set or is blank.
func (d *DiscriminatorBuilder) Build() (*oas.Discriminator, error) {
	errs := append(BuildErrors(nil), d.errs...)

	if strings.TrimSpace(d.propertyName) == "" {
		errs = append(errs, &BuildError{
			Component: ComponentDiscriminator,
			Field:     "propertyName",
			Message:   "propertyName must be a non-blank string",
			Cause:     oaserrors.ErrMissingDiscriminatorProperty,
		})
	}

	var mapping *oas.OrderedMap[string]
	if d.mapping != nil {
		mapping = oas.NewOrderedMap[string]()
		for _, entry := range d.mapping {
			path, err := d.registry.resolveTarget(entry.target)
			if err != nil {
				errs = append(errs, &BuildError{
					Component: ComponentDiscriminator,
					Field:     fmt.Sprintf("mapping[%q]", entry.value),
					Message:   "mapping target did not resolve",
					Cause:     err,
				})
				continue
			}
			mapping.Set(entry.value, path)
		}
	}

	if err := errs.asError(); err != nil {
		return nil, err
	}

	return &oas.Discriminator{
		PropertyName: d.propertyName,
		Mapping:      mapping,
	}, nil
}
