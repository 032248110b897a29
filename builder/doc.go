// Package builder provides the fluent construction surface for schema
// nodes, compositions, discriminators, and examples.
//
// Builders are mutable accumulators populated by one caller sequence and
// frozen with Build(), which returns an immutable snapshot from the oas
// package. Bad inputs — an unresolvable reference, a native value with no
// document-value representation — are recorded at the call that supplied
// them and reported together from Build(); a failed Build never yields a
// partial result.
//
// # Reference inputs
//
// Every slot that takes a schema accepts the same input forms:
//
//   - a bare name ("User"), rewritten to "#/components/schemas/User"
//   - an explicit pointer ("#/components/schemas/User"), kept verbatim
//   - an external URL ("https://example.com/schema.json"), kept verbatim
//   - a value of a type registered in a [Registry]
//   - an inline *SchemaBuilder or *oas.Schema
//
// # Example
//
//	reg := builder.NewRegistry()
//	reg.RegisterAs("Pet", Pet{})
//
//	schema, err := builder.Object().
//		WithRegistry(reg).
//		Property("name", builder.String()).
//		Property("owner", "User").
//		Required("name").
//		Build()
package builder
