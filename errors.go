package langsheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoLanguageFiles indicates a source directory with no .json, .yaml,
	// or .yml language files.
	ErrNoLanguageFiles = errors.New("langsheet: no language files found")

	// ErrEmptySheet indicates a sheet without a header row.
	ErrEmptySheet = errors.New("langsheet: sheet has no header row")

	// ErrDuplicateKeys indicates keys appearing on more than one sheet row
	// while the fail-on-duplicates policy is active.
	ErrDuplicateKeys = errors.New("langsheet: duplicate keys in sheet")

	// ErrDuplicateLanguageFile indicates two source files resolving to the
	// same language code, e.g. en.json next to en.yaml.
	ErrDuplicateLanguageFile = errors.New("langsheet: duplicate language file")
)

// DuplicateKeysError lists the keys that appeared more than once in a sheet,
// in first-detected order.
type DuplicateKeysError struct {
	Keys []string
}

func (e *DuplicateKeysError) Error() string {
	return fmt.Sprintf("langsheet: duplicate keys in sheet: %s", strings.Join(e.Keys, ", "))
}

func (e *DuplicateKeysError) Unwrap() error {
	return ErrDuplicateKeys
}
