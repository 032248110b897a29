package oas

import (
	"go.yaml.in/yaml/v4"

	"github.com/oaswrite/oaswrite/internal/nodejson"
)

// The exported encode surface. Both formats render the node tree produced
// by yamlNode; encoding performs a single read-only traversal and is safe
// to invoke repeatedly and concurrently on a built document.

// MarshalJSON renders the schema as compact JSON.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return nodejson.Marshal(s.yamlNode())
}

// MarshalYAML implements yaml.Marshaler.
func (s *Schema) MarshalYAML() (any, error) {
	return s.yamlNode(), nil
}

// EncodeYAML renders the schema as a YAML document.
func (s *Schema) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(s.yamlNode())
}

// MarshalJSON renders the reference as compact JSON.
func (r SchemaRef) MarshalJSON() ([]byte, error) {
	return nodejson.Marshal(r.yamlNode())
}

// MarshalYAML implements yaml.Marshaler.
func (r SchemaRef) MarshalYAML() (any, error) {
	return r.yamlNode(), nil
}

// MarshalJSON renders the discriminator as compact JSON.
func (d *Discriminator) MarshalJSON() ([]byte, error) {
	return nodejson.Marshal(d.yamlNode())
}

// MarshalYAML implements yaml.Marshaler.
func (d *Discriminator) MarshalYAML() (any, error) {
	return d.yamlNode(), nil
}

// MarshalJSON renders the example as compact JSON.
func (e *Example) MarshalJSON() ([]byte, error) {
	return nodejson.Marshal(e.yamlNode())
}

// MarshalYAML implements yaml.Marshaler.
func (e *Example) MarshalYAML() (any, error) {
	return e.yamlNode(), nil
}

// EncodeJSON renders the document as compact JSON.
func (d *Document) EncodeJSON() ([]byte, error) {
	return nodejson.Marshal(d.yamlNode())
}

// EncodeJSONIndent renders the document as indented JSON.
func (d *Document) EncodeJSONIndent(prefix, indent string) ([]byte, error) {
	return nodejson.MarshalIndent(d.yamlNode(), prefix, indent)
}

// EncodeYAML renders the document as YAML.
func (d *Document) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(d.yamlNode())
}

// MarshalJSON renders the document as compact JSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.EncodeJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (d *Document) MarshalYAML() (any, error) {
	return d.yamlNode(), nil
}
