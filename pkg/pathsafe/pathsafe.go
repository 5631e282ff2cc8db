// Package pathsafe constructs output file paths that are guaranteed to stay
// inside a base directory.
//
// Output file names are frequently derived from untrusted input such as
// spreadsheet headers. Even when the name has already passed validation,
// JoinWithin re-checks the final path as defense in depth:
//
//	path, err := pathsafe.JoinWithin("/out", "en.json")   // "/out/en.json"
//	_, err = pathsafe.JoinWithin("/out", "../evil.json")  // ErrUnsafeOutputPath
package pathsafe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsafeOutputPath indicates a candidate path that would escape the base
// directory.
var ErrUnsafeOutputPath = errors.New("pathsafe: output path escapes base directory")

// JoinWithin joins filename onto baseDir and verifies the result stays inside
// baseDir. Both paths are resolved to absolute form before comparison; the
// check succeeds only when the relative path from base to candidate neither
// starts with a parent-directory segment nor is absolute.
func JoinWithin(baseDir, filename string) (string, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("pathsafe: resolving base %q: %w", baseDir, err)
	}

	candidate, err := filepath.Abs(filepath.Join(base, filename))
	if err != nil {
		return "", fmt.Errorf("pathsafe: resolving %q: %w", filename, err)
	}

	rel, err := filepath.Rel(base, candidate)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsafeOutputPath, filename)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeOutputPath, filename)
	}

	return candidate, nil
}
