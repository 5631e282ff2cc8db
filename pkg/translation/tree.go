package translation

import (
	"sort"
	"strings"
)

// Tree is a node in a translation tree: either a string leaf or a branch
// holding named children in insertion order. The zero value is not usable;
// create branches with NewTree.
type Tree struct {
	children map[string]*Tree
	keys     []string
	value    string
	leaf     bool
}

// Entry is one flattened leaf: a dotted key and its string value.
type Entry struct {
	Key   string
	Value string
}

// NewTree creates an empty branch node.
func NewTree() *Tree {
	return &Tree{children: make(map[string]*Tree)}
}

func newLeaf(value string) *Tree {
	return &Tree{leaf: true, value: value}
}

// IsLeaf reports whether the node is a string leaf.
func (t *Tree) IsLeaf() bool {
	return t.leaf
}

// Value returns the leaf value; empty for branch nodes.
func (t *Tree) Value() string {
	return t.value
}

// Keys returns the branch's child names in insertion order.
// The returned slice must not be modified.
func (t *Tree) Keys() []string {
	return t.keys
}

// Child returns the named child of a branch node.
func (t *Tree) Child(key string) (*Tree, bool) {
	c, ok := t.children[key]
	return c, ok
}

// Len returns the number of direct children of a branch node.
func (t *Tree) Len() int {
	return len(t.keys)
}

func (t *Tree) setChild(key string, child *Tree) {
	if _, exists := t.children[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.children[key] = child
}

// SetPath sets the leaf at the given path segments, creating intermediate
// branches as needed. A leaf occupying a branch position on the way is
// replaced with a fresh branch and its value discarded: nesting is
// authoritative over pre-existing conflicting data. Calling SetPath with no
// segments is a no-op.
func (t *Tree) SetPath(segments []string, value string) {
	if t.leaf || len(segments) == 0 {
		return
	}

	node := t
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node.children[seg]
		if !ok || child.leaf {
			child = NewTree()
			node.setChild(seg, child)
		}
		node = child
	}

	// Overwrites whatever occupies the last segment, leaf or branch alike.
	node.setChild(segments[len(segments)-1], newLeaf(value))
}

// Flatten walks the tree depth-first in natural key order and calls visit
// once per string leaf with its dotted key.
func (t *Tree) Flatten(visit func(key, value string)) {
	t.flatten("", visit)
}

func (t *Tree) flatten(prefix string, visit func(key, value string)) {
	if t.leaf {
		visit(prefix, t.value)
		return
	}
	for _, key := range t.keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		t.children[key].flatten(full, visit)
	}
}

// Entries returns all flattened leaves in natural key order.
func (t *Tree) Entries() []Entry {
	var entries []Entry
	t.Flatten(func(key, value string) {
		entries = append(entries, Entry{Key: key, Value: value})
	})
	return entries
}

// Nest builds a tree from flattened entries, splitting each key on ".".
// Later entries for the same key overwrite earlier ones.
func Nest(entries []Entry) *Tree {
	t := NewTree()
	for _, e := range entries {
		t.SetPath(strings.Split(e.Key, "."), e.Value)
	}
	return t
}

// Equal reports structural equality: same key sets and same leaf values at
// every level. Child insertion order is ignored.
func (t *Tree) Equal(other *Tree) bool {
	if t.leaf != other.leaf {
		return false
	}
	if t.leaf {
		return t.value == other.value
	}
	if len(t.keys) != len(other.keys) {
		return false
	}
	for key, child := range t.children {
		oc, ok := other.children[key]
		if !ok || !child.Equal(oc) {
			return false
		}
	}
	return true
}

// FromAny validates an arbitrary decoded value as a translation tree.
// Every node must be a string or a map with string keys; the first violation
// is reported as an InvalidStructureError with the dotted path and the
// JavaScript-style type name found. Child order follows sorted key order
// since Go maps carry none.
func FromAny(v any) (*Tree, error) {
	return fromAny(v, "")
}

func fromAny(v any, path string) (*Tree, error) {
	switch val := v.(type) {
	case string:
		return newLeaf(val), nil
	case map[string]any:
		t := NewTree()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := fromAny(val[k], joinPath(path, k))
			if err != nil {
				return nil, err
			}
			t.setChild(k, child)
		}
		return t, nil
	default:
		return nil, &InvalidStructureError{Path: path, Type: jsTypeName(v)}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// jsTypeName names a decoded value the way JavaScript diagnostics would.
func jsTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, float32, int, int64, uint64:
		return "number"
	case []any:
		return "Array"
	case map[string]any:
		return "object"
	case string:
		return "string"
	default:
		return "unknown"
	}
}
