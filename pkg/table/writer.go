package table

import (
	"sort"

	"github.com/dmitrymomot/langsheet/pkg/translation"
)

// KeyHeader is the fixed header of the key column.
const KeyHeader = "Key"

// Rows renders an aggregated translation table as spreadsheet rows: one
// header row followed by one data row per key in ascending lexicographic
// key order. Language columns follow the caller-supplied code order exactly;
// no sorting is applied to columns. displayName maps a code to its header
// label and may be nil to use codes verbatim. Keys missing a value for a
// language render as an empty cell.
func Rows(tbl *translation.Table, codes []string, displayName func(code string) string) [][]string {
	header := make([]string, 0, len(codes)+1)
	header = append(header, KeyHeader)
	for _, code := range codes {
		label := code
		if displayName != nil {
			label = displayName(code)
		}
		header = append(header, label)
	}

	keys := make([]string, len(tbl.Keys()))
	copy(keys, tbl.Keys())
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys)+1)
	rows = append(rows, header)
	for _, key := range keys {
		row := make([]string, 0, len(codes)+1)
		row = append(row, key)
		for _, code := range codes {
			value, _ := tbl.Get(key, code)
			row = append(row, value)
		}
		rows = append(rows, row)
	}

	return rows
}
