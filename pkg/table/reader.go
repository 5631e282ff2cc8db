package table

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/langsheet/pkg/langcode"
	"github.com/dmitrymomot/langsheet/pkg/translation"
)

// ParseHeaders resolves the language columns of a header row into validated
// language codes. The first cell is the key column and is ignored. Each
// remaining cell is trimmed, looked up in the display-name-to-code reverse
// map, and used verbatim when no mapping exists. Any blank header, invalid
// resulting code, or two columns resolving to the same code aborts parsing.
func ParseHeaders(headerRow []string, reverse map[string]string) ([]string, error) {
	codes := make([]string, 0, max(len(headerRow)-1, 0))
	firstColumn := make(map[string]int)

	for i := 1; i < len(headerRow); i++ {
		column := i + 1 // 1-indexed, key column included

		header := strings.TrimSpace(headerRow[i])
		if header == "" {
			return nil, &EmptyHeaderError{Column: column}
		}

		code := header
		if mapped, ok := reverse[header]; ok {
			code = mapped
		}

		if err := langcode.Validate(code); err != nil {
			return nil, fmt.Errorf("header column %d: %w", column, err)
		}

		if first, ok := firstColumn[code]; ok {
			return nil, &DuplicateLanguageColumnError{Code: code, FirstColumn: first, SecondColumn: column}
		}
		firstColumn[code] = column

		codes = append(codes, code)
	}

	return codes, nil
}

// ReadResult is the outcome of walking a sheet's data rows.
type ReadResult struct {
	// ByLanguage holds one nested translation tree per language code.
	ByLanguage map[string]*translation.Tree
	// Duplicates lists keys that appeared on more than one row, each once,
	// in first-detected order. Values for such keys follow last-row-wins.
	Duplicates []string
}

// ReadRows walks the data rows of a sheet (rows[0] is the header) into one
// translation tree per language code. codes must be the output of
// ParseHeaders for the same sheet, so codes[i] describes column i+2.
//
// Rows with a blank or absent key cell are skipped. A language cell is
// written into the tree whenever the column exists in the row, explicit
// empty strings included; cells beyond the row's length are treated as
// absent. Duplicated keys never abort the read: they are collected for the
// caller and later rows overwrite earlier ones.
func ReadRows(rows [][]string, codes []string) *ReadResult {
	result := &ReadResult{ByLanguage: make(map[string]*translation.Tree, len(codes))}
	for _, code := range codes {
		result.ByLanguage[code] = translation.NewTree()
	}

	seen := make(map[string]struct{})
	reported := make(map[string]struct{})

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) == 0 || row[0] == "" {
			continue
		}
		key := row[0]

		if _, dup := seen[key]; dup {
			if _, done := reported[key]; !done {
				reported[key] = struct{}{}
				result.Duplicates = append(result.Duplicates, key)
			}
		} else {
			seen[key] = struct{}{}
		}

		segments := strings.Split(key, ".")
		for i, code := range codes {
			cell := i + 1
			if cell >= len(row) {
				continue
			}
			result.ByLanguage[code].SetPath(segments, row[cell])
		}
	}

	return result
}
