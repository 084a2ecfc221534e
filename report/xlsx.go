// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

func excelCell(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}

// sheet names are limited to 31 characters by the xlsx format
const maxSheetName = 31

// AddTableSheet exports a table to a sheet of the report workbook.
// Hidden columns are exported too: the workbook is the machine-readable
// companion of the report, not a rendering of it.
func (r *Report) AddTableSheet(sheet string, data Dataset, cols []Column) error {
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}

	if _, err := r.wb.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet '%s': %v", sheet, err)
	}

	header := []any{"Sample"}
	for _, col := range cols {
		title := col.Title
		if title == "" {
			title = col.ID
		}
		header = append(header, title)
	}
	if err := r.wb.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, sname := range sortedSamples(data) {
		rec := data[sname]
		row := []any{sname}
		for _, col := range cols {
			v, ok := rec[col.ID]
			if !ok {
				row = append(row, nil)
				continue
			}
			if col.Modify != nil {
				v = col.Modify(v)
			}
			if num, isNum := v.Float(); isNum {
				row = append(row, num)
			} else {
				row = append(row, v.String())
			}
		}
		cell, err := excelCell(1, i+2)
		if err != nil {
			return err
		}
		if err := r.wb.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func (r *Report) saveWorkbook() error {
	// drop the default empty sheet if any table sheets were added
	if r.wb.SheetCount > 1 {
		_ = r.wb.DeleteSheet("Sheet1")
	}
	path := filepath.Join(r.outDir, "seqreport.xlsx")
	if err := r.wb.SaveAs(path); err != nil {
		// the workbook is a secondary artifact, leave the report in place
		_ = os.Remove(path)
		return err
	}
	return nil
}
