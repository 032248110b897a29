package oas

import (
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/oaswrite/oaswrite/docvalue"
)

// The model encodes by lowering to a yaml.Node tree with explicit scalar
// tags, then rendering that one tree as either JSON or YAML. Fields that
// were never set contribute no node; allocated-but-empty collections
// contribute an empty mapping/sequence node, which both renderers emit as
// an empty literal.

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func strNode(s string) *yaml.Node {
	return scalarNode("!!str", s)
}

func boolNode(b bool) *yaml.Node {
	return scalarNode("!!bool", strconv.FormatBool(b))
}

func floatNode(f float64) *yaml.Node {
	return docvalue.FloatNode(f)
}

func intNode(i int) *yaml.Node {
	return scalarNode("!!int", strconv.Itoa(i))
}

// mapping accumulates key/value pairs of an object node in append order.
type mapping struct {
	node *yaml.Node
}

func newMapping() *mapping {
	return &mapping{node: &yaml.Node{Kind: yaml.MappingNode}}
}

func (m *mapping) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content, strNode(key), value)
}

func sequenceNode(items []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func refListNode(refs []SchemaRef) *yaml.Node {
	items := make([]*yaml.Node, len(refs))
	for i, r := range refs {
		items[i] = r.yamlNode()
	}
	return sequenceNode(items)
}

func valueListNode(values []docvalue.Value) *yaml.Node {
	items := make([]*yaml.Node, len(values))
	for i, v := range values {
		items[i] = v.YAMLNode()
	}
	return sequenceNode(items)
}

func stringListNode(values []string) *yaml.Node {
	items := make([]*yaml.Node, len(values))
	for i, s := range values {
		items[i] = strNode(s)
	}
	return sequenceNode(items)
}

func extensionsInto(m *mapping, ext *OrderedMap[docvalue.Value]) {
	ext.Range(func(key string, v docvalue.Value) bool {
		m.add(key, v.YAMLNode())
		return true
	})
}

// yamlNode renders r as either a {$ref: path} object or the inline schema.
func (r SchemaRef) yamlNode() *yaml.Node {
	if r.IsRef() {
		m := newMapping()
		m.add("$ref", strNode(r.ref))
		return m.node
	}
	if r.inline != nil {
		return r.inline.yamlNode()
	}
	return scalarNode("!!null", "null")
}

func (s *Schema) yamlNode() *yaml.Node {
	m := newMapping()

	if s.Ref != "" {
		m.add("$ref", strNode(s.Ref))
	}
	if s.Type != "" {
		m.add("type", strNode(string(s.Type)))
	}
	if s.Format != "" {
		m.add("format", strNode(s.Format))
	}
	if s.Title != "" {
		m.add("title", strNode(s.Title))
	}
	if s.Description != "" {
		m.add("description", strNode(s.Description))
	}
	if s.Default != nil {
		m.add("default", s.Default.YAMLNode())
	}

	if s.MultipleOf != nil {
		m.add("multipleOf", floatNode(*s.MultipleOf))
	}
	if s.Maximum != nil {
		m.add("maximum", floatNode(*s.Maximum))
	}
	if s.ExclusiveMaximum {
		m.add("exclusiveMaximum", boolNode(true))
	}
	if s.Minimum != nil {
		m.add("minimum", floatNode(*s.Minimum))
	}
	if s.ExclusiveMinimum {
		m.add("exclusiveMinimum", boolNode(true))
	}

	if s.MaxLength != nil {
		m.add("maxLength", intNode(*s.MaxLength))
	}
	if s.MinLength != nil {
		m.add("minLength", intNode(*s.MinLength))
	}
	if s.Pattern != "" {
		m.add("pattern", strNode(s.Pattern))
	}

	if s.Items != nil {
		if s.Items.IsTuple() {
			m.add("items", refListNode(s.Items.tuple))
		} else {
			m.add("items", s.Items.Single().yamlNode())
		}
	}

	if s.Properties != nil {
		props := newMapping()
		s.Properties.Range(func(name string, prop *Schema) bool {
			props.add(name, prop.yamlNode())
			return true
		})
		m.add("properties", props.node)
	}
	if s.Required != nil {
		m.add("required", stringListNode(s.Required))
	}
	if s.AdditionalProperties != nil {
		if s.AdditionalProperties.IsSchema() {
			m.add("additionalProperties", s.AdditionalProperties.schema.yamlNode())
		} else {
			m.add("additionalProperties", boolNode(s.AdditionalProperties.Allowed()))
		}
	}

	if s.Enum != nil {
		m.add("enum", valueListNode(s.Enum))
	}
	if s.Const != nil {
		m.add("const", s.Const.YAMLNode())
	}

	if len(s.AllOf) > 0 {
		m.add("allOf", refListNode(s.AllOf))
	}
	if len(s.OneOf) > 0 {
		m.add("oneOf", refListNode(s.OneOf))
	}
	if len(s.AnyOf) > 0 {
		m.add("anyOf", refListNode(s.AnyOf))
	}
	if s.Not != nil {
		m.add("not", s.Not.yamlNode())
	}

	if s.Discriminator != nil {
		m.add("discriminator", s.Discriminator.yamlNode())
	}

	if s.Example != nil {
		m.add("example", s.Example.YAMLNode())
	}
	if s.Examples != nil {
		examples := newMapping()
		s.Examples.Range(func(name string, ex *Example) bool {
			examples.add(name, ex.yamlNode())
			return true
		})
		m.add("examples", examples.node)
	}

	extensionsInto(m, s.Extensions)
	return m.node
}

func (d *Discriminator) yamlNode() *yaml.Node {
	m := newMapping()
	m.add("propertyName", strNode(d.PropertyName))
	if d.Mapping != nil {
		targets := newMapping()
		d.Mapping.Range(func(value, path string) bool {
			targets.add(value, strNode(path))
			return true
		})
		m.add("mapping", targets.node)
	}
	return m.node
}

func (e *Example) yamlNode() *yaml.Node {
	m := newMapping()
	if e.Summary != "" {
		m.add("summary", strNode(e.Summary))
	}
	if e.Description != "" {
		m.add("description", strNode(e.Description))
	}
	if e.Value != nil {
		m.add("value", e.Value.YAMLNode())
	}
	if e.ExternalValue != "" {
		m.add("externalValue", strNode(e.ExternalValue))
	}
	return m.node
}

func (c *Components) yamlNode() *yaml.Node {
	m := newMapping()
	if c.Schemas != nil {
		schemas := newMapping()
		c.Schemas.Range(func(name string, s *Schema) bool {
			schemas.add(name, s.yamlNode())
			return true
		})
		m.add("schemas", schemas.node)
	}
	extensionsInto(m, c.Extensions)
	return m.node
}

func (d *Document) yamlNode() *yaml.Node {
	m := newMapping()
	if d.OpenAPI != "" {
		m.add("openapi", strNode(d.OpenAPI))
	}
	if d.Info != (Info{}) {
		info := newMapping()
		if d.Info.Title != "" {
			info.add("title", strNode(d.Info.Title))
		}
		if d.Info.Version != "" {
			info.add("version", strNode(d.Info.Version))
		}
		if d.Info.Description != "" {
			info.add("description", strNode(d.Info.Description))
		}
		m.add("info", info.node)
	}
	if d.Components != nil {
		m.add("components", d.Components.yamlNode())
	}
	extensionsInto(m, d.Extensions)
	return m.node
}
