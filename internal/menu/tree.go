package menu

import (
	"sort"
)

// NodeKind tags a hierarchy node.
type NodeKind int

const (
	// KindInvalid marks data that was neither a mapping nor a list.
	KindInvalid NodeKind = iota
	KindCategory
	KindLeaf
)

func (k NodeKind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindLeaf:
		return "leaf"
	default:
		return "invalid"
	}
}

// Node is one level of a labeled hierarchy: either a category mapping names
// to subtrees or a leaf holding selectable strings.
type Node struct {
	Kind     NodeKind
	Children map[string]*Node
	Items    []string
}

// NewCategory returns a category node over the supplied children.
func NewCategory(children map[string]*Node) *Node {
	if children == nil {
		children = make(map[string]*Node)
	}
	return &Node{Kind: KindCategory, Children: children}
}

// NewLeaf returns a leaf node holding a copy of items.
func NewLeaf(items []string) *Node {
	dup := make([]string, len(items))
	copy(dup, items)
	return &Node{Kind: KindLeaf, Items: dup}
}

// IsCategory reports whether n is a category.
func (n *Node) IsCategory() bool {
	return n != nil && n.Kind == KindCategory
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Kind == KindLeaf
}

// Keys returns the category's child names in lexicographic order.
func (n *Node) Keys() []string {
	if !n.IsCategory() {
		return nil
	}
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Child resolves a direct child by name.
func (n *Node) Child(key string) (*Node, bool) {
	if !n.IsCategory() {
		return nil, false
	}
	child, ok := n.Children[key]
	return child, ok
}

// Find walks the given path from n.
func (n *Node) Find(path ...string) (*Node, bool) {
	current := n
	for _, key := range path {
		next, ok := current.Child(key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// SortedItems returns a sorted copy of the leaf items.
func (n *Node) SortedItems() []string {
	if !n.IsLeaf() {
		return nil
	}
	dup := make([]string, len(n.Items))
	copy(dup, n.Items)
	sort.Strings(dup)
	return dup
}

// Intn is the random source used by RandomLeaf.
type Intn interface {
	Intn(n int) int
}

// RandomLeaf descends by uniformly picking a child at each category and
// returns the path taken plus one item from the final leaf. ok is false when
// the walk ends on an empty category, an empty leaf, or invalid data.
func (n *Node) RandomLeaf(rng Intn) (path []string, item string, ok bool) {
	current := n
	for current.IsCategory() {
		keys := current.Keys()
		if len(keys) == 0 {
			return path, "", false
		}
		key := keys[rng.Intn(len(keys))]
		path = append(path, key)
		current = current.Children[key]
	}
	if !current.IsLeaf() || len(current.Items) == 0 {
		return path, "", false
	}
	return path, current.Items[rng.Intn(len(current.Items))], true
}
