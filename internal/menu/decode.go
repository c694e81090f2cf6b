package menu

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes JSON or YAML hierarchy data into a tree. Mappings become
// categories, sequences become leaves, anything else becomes an invalid node.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse hierarchy: %w", err)
	}
	return FromYAML(&doc), nil
}

// FromYAML converts a decoded yaml.Node.
func FromYAML(y *yaml.Node) *Node {
	if y == nil {
		return &Node{Kind: KindInvalid}
	}
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{Kind: KindInvalid}
		}
		return FromYAML(y.Content[0])
	case yaml.AliasNode:
		return FromYAML(y.Alias)
	case yaml.MappingNode:
		children := make(map[string]*Node, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := strings.TrimSpace(y.Content[i].Value)
			if key == "" {
				continue
			}
			children[key] = FromYAML(y.Content[i+1])
		}
		return NewCategory(children)
	case yaml.SequenceNode:
		items := make([]string, 0, len(y.Content))
		for _, entry := range y.Content {
			if entry.Kind == yaml.AliasNode {
				entry = entry.Alias
			}
			if entry == nil || entry.Kind != yaml.ScalarNode || entry.Tag == "!!null" {
				continue
			}
			if value := strings.TrimSpace(entry.Value); value != "" {
				items = append(items, value)
			}
		}
		return &Node{Kind: KindLeaf, Items: items}
	default:
		return &Node{Kind: KindInvalid}
	}
}

// FromValue converts plain Go values (as produced by encoding/json or built by
// hand) into a tree.
func FromValue(v interface{}) *Node {
	switch val := v.(type) {
	case *Node:
		return val
	case map[string]interface{}:
		children := make(map[string]*Node, len(val))
		for k, child := range val {
			if strings.TrimSpace(k) == "" {
				continue
			}
			children[k] = FromValue(child)
		}
		return NewCategory(children)
	case map[string][]string:
		children := make(map[string]*Node, len(val))
		for k, items := range val {
			if strings.TrimSpace(k) == "" {
				continue
			}
			children[k] = NewLeaf(items)
		}
		return NewCategory(children)
	case []string:
		return NewLeaf(val)
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, entry := range val {
			if s, ok := entry.(string); ok && strings.TrimSpace(s) != "" {
				items = append(items, s)
			}
		}
		return &Node{Kind: KindLeaf, Items: items}
	default:
		return &Node{Kind: KindInvalid}
	}
}
