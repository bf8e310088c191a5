package tree

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	// KindString is a text leaf. JSON numbers, booleans and null are kept as
	// their literal JSON text.
	KindString Kind = iota + 1
	// KindArray is an ordered sequence of nodes.
	KindArray
	// KindObject maps names to nodes.
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Separator splits key paths into segments.
const Separator = "."

// Node is one JSON-equivalent translation value.
// Only the fields matching its Kind are meaningful.
type Node struct {
	fields  map[string]*Node
	text    string
	items   []*Node
	kind    Kind
	literal bool
}

// String creates a text leaf.
func String(text string) *Node {
	return &Node{kind: KindString, text: text}
}

// Array creates an array node holding items in order.
func Array(items ...*Node) *Node {
	return &Node{kind: KindArray, items: slices.Clone(items)}
}

// Object creates an empty object node.
func Object() *Node {
	return &Node{kind: KindObject, fields: make(map[string]*Node)}
}

// Kind reports the node variant.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

// IsObject reports whether n is an object node.
func (n *Node) IsObject() bool { return n.Kind() == KindObject }

// IsArray reports whether n is an array node.
func (n *Node) IsArray() bool { return n.Kind() == KindArray }

// IsContainer reports whether n is an object or array node.
func (n *Node) IsContainer() bool { return n.IsObject() || n.IsArray() }

// Text returns the raw text of a string node, or "" for other kinds.
func (n *Node) Text() string {
	if n.Kind() != KindString {
		return ""
	}
	return n.text
}

// Len returns the number of children of a container node.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindArray:
		return len(n.items)
	case KindObject:
		return len(n.fields)
	default:
		return 0
	}
}

// Index returns the i-th item of an array node.
func (n *Node) Index(i int) (*Node, bool) {
	if n.Kind() != KindArray || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Items returns a copy of the items of an array node.
func (n *Node) Items() []*Node {
	if n.Kind() != KindArray {
		return nil
	}
	return slices.Clone(n.items)
}

// Get returns the named child of an object node.
func (n *Node) Get(name string) (*Node, bool) {
	if n.Kind() != KindObject {
		return nil, false
	}
	child, ok := n.fields[name]
	return child, ok
}

// Set stores child under name. It is a no-op on non-object nodes or a nil child.
func (n *Node) Set(name string, child *Node) {
	if n.Kind() != KindObject || child == nil {
		return
	}
	n.fields[name] = child
}

// SetIndex replaces the i-th item of an array node.
func (n *Node) SetIndex(i int, child *Node) bool {
	if n.Kind() != KindArray || child == nil || i < 0 || i >= len(n.items) {
		return false
	}
	n.items[i] = child
	return true
}

// Truncate shortens an array node to at most size items.
func (n *Node) Truncate(size int) {
	if n.Kind() != KindArray || size < 0 || size >= len(n.items) {
		return
	}
	n.items = n.items[:size]
}

// Delete removes the named child and reports whether it existed.
func (n *Node) Delete(name string) bool {
	if n.Kind() != KindObject {
		return false
	}
	if _, ok := n.fields[name]; !ok {
		return false
	}
	delete(n.fields, name)
	return true
}

// Clear removes every child of an object node.
func (n *Node) Clear() {
	if n.Kind() != KindObject {
		return
	}
	clear(n.fields)
}

// Keys returns the names of an object node in sorted order.
func (n *Node) Keys() []string {
	if n.Kind() != KindObject {
		return nil
	}
	return slices.Sorted(maps.Keys(n.fields))
}

// Child resolves one path segment. Objects are addressed by name, arrays by
// a non-negative decimal index.
func (n *Node) Child(segment string) (*Node, bool) {
	switch n.Kind() {
	case KindObject:
		return n.Get(segment)
	case KindArray:
		i, err := strconv.Atoi(segment)
		if err != nil {
			return nil, false
		}
		return n.Index(i)
	default:
		return nil, false
	}
}

// Lookup walks a dotted key path from n.
// The empty path resolves to n itself.
func (n *Node) Lookup(path string) (*Node, bool) {
	if path == "" {
		return n, n != nil
	}
	return n.Walk(Split(path)...)
}

// Walk resolves segments one level at a time and fails on the first segment
// that is absent or not navigable.
func (n *Node) Walk(segments ...string) (*Node, bool) {
	current := n
	for _, segment := range segments {
		next, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	switch n.Kind() {
	case KindString:
		return &Node{kind: KindString, text: n.text, literal: n.literal}
	case KindArray:
		items := make([]*Node, len(n.items))
		for i, item := range n.items {
			items[i] = item.Clone()
		}
		return &Node{kind: KindArray, items: items}
	case KindObject:
		out := Object()
		for name, child := range n.fields {
			out.fields[name] = child.Clone()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two nodes hold the same structure and text.
func Equal(a, b *Node) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindString:
		return a.text == b.text
	case KindArray:
		return slices.EqualFunc(a.items, b.items, Equal)
	case KindObject:
		return maps.EqualFunc(a.fields, b.fields, Equal)
	default:
		return true
	}
}

// Split breaks a key path into its segments. The empty path has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// Join builds a key path from segments, skipping empty ones.
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, Separator)
}
