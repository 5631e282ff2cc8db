// Package translation implements the structural codec between nested
// translation trees and flat dotted-key form, plus the tabular aggregate
// built from many trees.
//
// A Tree is a recursive structure in which every node is either a string
// leaf or a branch holding named children in insertion order. Arrays,
// numbers, booleans, and null are invalid at any depth; decoding reports the
// dotted path and the JavaScript-style type name of the first offending node.
//
// # Flatten and Nest
//
// Flatten walks a tree depth-first in natural key order and emits one
// dotted-key/value pair per string leaf:
//
//	{"app": {"title": "Hi", "body": "Text"}}
//	=> ("app.title", "Hi"), ("app.body", "Text")
//
// SetPath is the inverse primitive. Nesting is authoritative: if a path
// segment already holds a leaf, the leaf is replaced with a fresh branch and
// its value is discarded. For any valid tree, flattening and nesting every
// pair into an empty tree reproduces the original key set and leaf values.
//
// # Table
//
// Table aggregates flattened entries from many languages into an ordered
// key -> (language code -> value) mapping, tracking keys whose (key,
// language) slot was written more than once so callers can report or reject
// duplicates.
package translation
