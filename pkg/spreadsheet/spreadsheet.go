// Package spreadsheet reads and writes tabular row data as .xlsx or .csv
// files. It deals purely in [][]string rows; interpreting headers and cells
// is the caller's concern.
package spreadsheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingWorksheet indicates that the named worksheet does not exist
	// in the workbook.
	ErrMissingWorksheet = errors.New("spreadsheet: worksheet not found")

	// ErrUnsupportedFormat indicates a file extension with no codec.
	ErrUnsupportedFormat = errors.New("spreadsheet: unsupported file format")
)

// Codec reads and writes one sheet of row data at a file path.
// Implementations that have no sheet concept (csv) ignore the sheet name.
type Codec interface {
	// Read returns every row of the named sheet. Trailing cells a row never
	// had may be absent, so row lengths can differ.
	Read(path, sheet string) ([][]string, error)

	// Write creates or replaces the file at path with the given rows,
	// treating rows[0] as the header row.
	Write(path, sheet string, rows [][]string) error
}

// ForPath selects a codec by the path's file extension (.xlsx or .csv).
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return XLSX{}, nil
	case ".csv":
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
