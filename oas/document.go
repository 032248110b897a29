package oas

import "github.com/oaswrite/oaswrite/docvalue"

// Info is the document metadata attribute bag.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Components holds the reusable objects of a document. Only schemas are
// modeled here; other component kinds are plain attribute bags owned by
// the surrounding layers.
type Components struct {
	Schemas    *OrderedMap[*Schema]
	Extensions *OrderedMap[docvalue.Value]
}

// Document is the root of an API description under assembly. It carries
// just enough structure for end-to-end encoding: the path and operation
// attribute bags of a full description attach to a wrapper around this
// type.
type Document struct {
	OpenAPI    string
	Info       Info
	Components *Components
	Extensions *OrderedMap[docvalue.Value]
}

// NewDocument returns a document for the given OpenAPI version string
// with an allocated components section.
func NewDocument(version string) *Document {
	return &Document{
		OpenAPI: version,
		Components: &Components{
			Schemas: NewOrderedMap[*Schema](),
		},
	}
}

// AddSchema registers a schema under the given component name and returns
// the document for chaining.
func (d *Document) AddSchema(name string, s *Schema) *Document {
	if d.Components == nil {
		d.Components = &Components{}
	}
	if d.Components.Schemas == nil {
		d.Components.Schemas = NewOrderedMap[*Schema]()
	}
	d.Components.Schemas.Set(name, s)
	return d
}
