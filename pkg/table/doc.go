// Package table converts between raw spreadsheet rows and translation
// structures.
//
// A sheet has one header row and one data row per translation key. Column 1
// holds the key; columns 2..N hold one language each, identified by a header
// that is either a language code or a display name resolvable to one:
//
//	Key    | German | English
//	a.b    | Hallo  | Hello
//
// ParseHeaders resolves and validates the language columns, failing fast on
// blank headers, invalid codes, and two columns resolving to the same code.
// ReadRows walks data rows into one nested tree per language, collecting
// duplicated keys without aborting; the caller decides whether duplicates
// are fatal. Rows produces the inverse: a header row plus data rows sorted
// by key. Both directions are pure transforms over [][]string with no I/O.
package table
