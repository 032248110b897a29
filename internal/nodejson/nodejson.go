// Package nodejson renders yaml.Node trees as JSON.
//
// The oaswrite model types lower themselves to yaml.Node trees carrying
// explicit scalar tags; this package is the JSON half of the dual encoder.
// Because both output formats are produced from the same node tree, they
// cannot diverge in structure, key order, or scalar kind.
package nodejson

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Append writes the JSON rendering of node to buf.
//
// Mapping keys are emitted in node content order. Scalar nodes must carry
// one of the canonical tags (!!str, !!int, !!float, !!bool, !!null); any
// other node shape is an error.
func Append(buf *bytes.Buffer, node *yaml.Node) error {
	if node == nil {
		return fmt.Errorf("nodejson: nil node")
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return fmt.Errorf("nodejson: empty document node")
		}
		return Append(buf, node.Content[0])

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := gojson.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := Append(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := Append(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return appendScalar(buf, node)

	default:
		return fmt.Errorf("nodejson: unsupported node kind %d", node.Kind)
	}
}

// Marshal renders node as a compact JSON document.
func Marshal(node *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Append(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent renders node as indented JSON.
func MarshalIndent(node *yaml.Node, prefix, indent string) ([]byte, error) {
	data, err := Marshal(node)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendScalar(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Tag {
	case "!!str":
		data, err := gojson.Marshal(node.Value)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	case "!!int", "!!float", "!!bool":
		// Node values for these tags are produced by strconv and are
		// already valid JSON literals.
		buf.WriteString(node.Value)
		return nil
	case "!!null":
		buf.WriteString("null")
		return nil
	default:
		return fmt.Errorf("nodejson: unsupported scalar tag %q", node.Tag)
	}
}
