// Package oas defines the schema value model of an API description
// document and its dual JSON/YAML encoding.
//
// The central type is [Schema], a recursive node carrying scalar
// constraints, object and array shape, composition lists of [SchemaRef],
// an optional [Discriminator], and example payloads represented as
// docvalue values. Schemas are assembled with the builder package and are
// read-only snapshots afterwards.
//
// # Encoding
//
// Every model type lowers to a single yaml.Node tree with explicit scalar
// tags; JSON output walks that tree and YAML output marshals the same
// tree, so the two formats always agree on structure, key order, and
// scalar kinds. Fields that were never set are omitted from both outputs;
// collections explicitly set to empty render as empty literals.
package oas
