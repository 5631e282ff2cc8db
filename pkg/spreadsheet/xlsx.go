package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX reads and writes Excel workbooks via excelize.
type XLSX struct{}

// Read returns every row of the named worksheet.
func (XLSX) Read(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: opening %q: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: looking up sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrMissingWorksheet, sheet, path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// Write creates a workbook with a single named worksheet holding the rows.
// The header row is rendered bold; that is the only styling applied.
func (XLSX) Write(path, sheet string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("spreadsheet: naming sheet %q: %w", sheet, err)
		}
	} else if sheet == "" {
		sheet = "Sheet1"
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("spreadsheet: row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("spreadsheet: writing row %d: %w", i+1, err)
		}
	}

	if len(rows) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("spreadsheet: creating header style: %w", err)
		}
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("spreadsheet: styling header: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("spreadsheet: saving %q: %w", path, err)
	}
	return nil
}
