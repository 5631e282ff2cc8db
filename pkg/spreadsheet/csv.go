package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSV reads and writes comma-separated files. CSV has no worksheet concept,
// so the sheet name is ignored in both directions.
type CSV struct{}

// Read returns every record of the file. Records may have varying lengths.
func (CSV) Read(path, _ string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: opening %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: reading %q: %w", path, err)
	}
	return rows, nil
}

// Write creates or replaces the file at path with the given records.
func (CSV) Write(path, _ string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spreadsheet: creating %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("spreadsheet: writing %q: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("spreadsheet: writing %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("spreadsheet: closing %q: %w", path, err)
	}
	return nil
}
