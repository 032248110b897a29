package builder

import (
	"reflect"

	"github.com/oaswrite/oaswrite/oaserrors"
)

// Registry maps Go types to canonical schema names and optional
// descriptions. It is the explicit registration contract consulted when a
// reference input is a plain value rather than a name string: the value's
// dynamic type selects the schema name registered for it.
//
// A Registry is a construction-time accumulator like the builders: not
// safe for concurrent mutation.
type Registry struct {
	namer *schemaNamer
	types map[reflect.Type]typeEntry
}

type typeEntry struct {
	name        string
	description string
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithNaming selects the naming strategy used to derive schema names for
// types registered without an explicit name.
func WithNaming(strategy NamingStrategy) RegistryOption {
	return func(r *Registry) {
		r.namer.strategy = strategy
	}
}

// NewRegistry creates an empty type registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		namer: newSchemaNamer(),
		types: make(map[reflect.Type]typeEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register records v's dynamic type under a name derived by the
// configured naming strategy and returns that name.
func (r *Registry) Register(v any) string {
	return r.RegisterAs("", v)
}

// RegisterAs records v's dynamic type under the given name. An empty name
// falls back to the derived name. The effective name is returned.
func (r *Registry) RegisterAs(name string, v any) string {
	t := indirectType(v)
	if t == nil {
		panic("builder: RegisterAs with nil value")
	}
	if name == "" {
		name = r.namer.name(t)
	}
	entry := r.types[t]
	entry.name = name
	r.types[t] = entry
	return name
}

// Describe attaches a description to an already registered type. The
// description rides along when the attribute-bag layer materializes the
// component schema. Describing a type that was never registered does
// nothing: registration is the only way a type acquires a name.
func (r *Registry) Describe(v any, description string) {
	t := indirectType(v)
	entry, ok := r.types[t]
	if !ok {
		return
	}
	entry.description = description
	r.types[t] = entry
}

// NameFor returns the canonical schema name registered for v's dynamic
// type. An unregistered type is a resolve error: this library derives
// names only at registration, never implicitly at reference time.
func (r *Registry) NameFor(v any) (string, error) {
	t := indirectType(v)
	if t == nil {
		return "", &oaserrors.ResolveError{Message: "nil value has no type"}
	}
	if r != nil {
		if entry, ok := r.types[t]; ok {
			return entry.name, nil
		}
	}
	return "", &oaserrors.ResolveError{
		Input:   t.String(),
		Message: "type is not registered",
	}
}

// DescriptionFor returns the description registered for v's dynamic type.
func (r *Registry) DescriptionFor(v any) string {
	if r == nil {
		return ""
	}
	return r.types[indirectType(v)].description
}

// indirectType returns the dynamic type of v with pointers unwrapped, so
// User{} and &User{} register and resolve identically.
func indirectType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
