// Package oaswrite assembles OpenAPI description documents in memory and
// emits them as JSON and YAML with exactly matching semantics.
//
// The library consists of four packages:
//
//   - oas: the schema value model, document carrier, and dual encoder
//   - builder: fluent builders, reference resolution, and the type registry
//   - docvalue: the closed representation of arbitrary example payloads
//   - oaserrors: structured error types shared across the library
//
// # Quick Start
//
// Build a schema and encode a document:
//
//	import (
//		"github.com/oaswrite/oaswrite/builder"
//		"github.com/oaswrite/oaswrite/oas"
//	)
//
//	pet, err := builder.Object().
//		Property("name", builder.String()).
//		Property("tag", builder.String()).
//		Required("name").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc := oas.NewDocument("3.0.3")
//	doc.Info = oas.Info{Title: "Petstore", Version: "1.0.0"}
//	doc.AddSchema("Pet", pet)
//
//	jsonOut, _ := doc.EncodeJSON()
//	yamlOut, _ := doc.EncodeYAML()
//
// Both outputs carry the same keys in the same order with the same scalar
// kinds; decoding either yields a structurally equal tree.
//
// # Composition
//
// Schemas compose through allOf, oneOf, anyOf, and not, with references
// resolved from bare names, full pointers, registered types, or inline
// builders:
//
//	dog, err := builder.NewSchema().
//		AllOf("Pet", builder.Object().
//			Property("bark", builder.Boolean())).
//		Build()
//
// Documents are assembled single-threaded; once built, schemas and
// documents are read-only and safe to encode concurrently.
package oaswrite
