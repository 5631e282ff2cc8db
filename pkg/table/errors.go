package table

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyHeader indicates a blank language header cell.
	ErrEmptyHeader = errors.New("table: empty header cell")

	// ErrDuplicateLanguageColumn indicates two header columns resolving to
	// the same language code.
	ErrDuplicateLanguageColumn = errors.New("table: duplicate language column")
)

// EmptyHeaderError reports the 1-indexed column (key column included) of a
// blank header cell.
type EmptyHeaderError struct {
	Column int
}

func (e *EmptyHeaderError) Error() string {
	return fmt.Sprintf("table: empty header cell in column %d", e.Column)
}

func (e *EmptyHeaderError) Unwrap() error {
	return ErrEmptyHeader
}

// DuplicateLanguageColumnError reports two columns that resolved to the same
// language code, e.g. a literal "de" column next to a "German" column.
type DuplicateLanguageColumnError struct {
	Code         string
	FirstColumn  int
	SecondColumn int
}

func (e *DuplicateLanguageColumnError) Error() string {
	return fmt.Sprintf("table: columns %d and %d both resolve to language %q", e.FirstColumn, e.SecondColumn, e.Code)
}

func (e *DuplicateLanguageColumnError) Unwrap() error {
	return ErrDuplicateLanguageColumn
}
