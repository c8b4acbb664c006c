// Package yaml is the YAML front-end: it decodes YAML text into the ordered
// document Value so the grid pipeline can run over it unchanged. Mapping key
// order is preserved via the yaml.v3 node tree.
package yaml

import (
	"fmt"
	"strings"

	jsongrid "github.com/reoring/jsongrid"
	"gopkg.in/yaml.v3"
)

// Parse decodes a single YAML document into a Value.
func Parse(text string) (*jsongrid.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return nil, err
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return jsongrid.Null(), nil
	}
	return fromNode(node.Content[0])
}

// Derive parses YAML text and derives a grid from it. Outcomes mirror
// jsongrid.Derive: (nil, nil) for blank input or no qualifying array.
func Derive(text string, opts ...jsongrid.Options) (*jsongrid.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	root, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return jsongrid.DeriveValue(root, opts...), nil
}

func fromNode(n *yaml.Node) (*jsongrid.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jsongrid.Null(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return fromScalar(n), nil
	case yaml.SequenceNode:
		arr := jsongrid.Array()
		for _, el := range n.Content {
			v, err := fromNode(el)
			if err != nil {
				return nil, err
			}
			arr.Arr = append(arr.Arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := jsongrid.Object()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Obj = append(obj.Obj, jsongrid.Field{Key: n.Content[i].Value, Value: v})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func fromScalar(n *yaml.Node) *jsongrid.Value {
	switch n.Tag {
	case "!!null":
		return jsongrid.Null()
	case "!!bool":
		return jsongrid.Bool(strings.EqualFold(n.Value, "true"))
	case "!!int", "!!float":
		return jsongrid.Number(n.Value)
	default:
		// !!str, !!timestamp, and anything custom stays textual; timestamps
		// in ISO form are picked up by the date column rule downstream.
		return jsongrid.String(n.Value)
	}
}
