package docvalue

import (
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/oaswrite/oaswrite/internal/nodejson"
)

// YAMLNode lowers v to a yaml.Node tree with explicit scalar tags.
//
// The explicit tags make the YAML emitter quote any string whose plain
// rendering would resolve to a different kind ("true", "123", "null"), so
// scalar fidelity survives a decode. The same tree drives the JSON
// rendering, which keeps the two formats in agreement.
func (v Value) YAMLNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.b))
	case KindInt:
		return scalarNode("!!int", strconv.FormatInt(v.i, 10))
	case KindFloat:
		return FloatNode(v.f)
	case KindString:
		return scalarNode("!!str", v.s)
	case KindSeq:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(v.seq)),
		}
		for _, item := range v.seq {
			node.Content = append(node.Content, item.YAMLNode())
		}
		return node
	case KindMap:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, len(v.entries)*2),
		}
		for _, e := range v.entries {
			node.Content = append(node.Content, scalarNode("!!str", e.Key), e.Value.YAMLNode())
		}
		return node
	default:
		return scalarNode("!!null", "null")
	}
}

// MarshalJSON renders v as compact JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return nodejson.Marshal(v.YAMLNode())
}

// MarshalYAML implements yaml.Marshaler so a Value embeds naturally in
// yaml.Marshal calls.
func (v Value) MarshalYAML() (any, error) {
	return v.YAMLNode(), nil
}

// EncodeYAML renders v as a YAML document.
func (v Value) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(v.YAMLNode())
}

// FloatNode lowers a float to a tagged scalar node. Integral values keep
// a trailing ".0" instead of collapsing to an integer literal, so the
// value re-reads as a float in both formats. JSON has no literal for NaN
// or the infinities; FromNative rejects them, and a Value built around
// one directly lowers to null rather than emitting text neither format
// can parse.
func FloatNode(f float64) *yaml.Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return scalarNode("!!null", "null")
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return scalarNode("!!float", s)
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
