package translation

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure indicates a tree node that is neither a string leaf
// nor a branch object.
var ErrInvalidStructure = errors.New("translation: invalid structure")

// InvalidStructureError reports the first structural violation found while
// decoding or validating a tree.
type InvalidStructureError struct {
	// Path is the dotted path to the offending node; empty for the root.
	Path string
	// Type is the JavaScript-style name of the value found there,
	// e.g. "Array", "number", "boolean", "null".
	Type string
}

// Error implements the error interface.
func (e *InvalidStructureError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("translation: invalid structure at %s: found %s, expected string or object", path, e.Type)
}

// Unwrap makes the error match ErrInvalidStructure via errors.Is.
func (e *InvalidStructureError) Unwrap() error {
	return ErrInvalidStructure
}
