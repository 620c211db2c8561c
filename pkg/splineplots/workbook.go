package splineplots

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes the series drawn on each target of fig to an xlsx
// workbook at path: one sheet per target, two columns per series.
func WriteWorkbook(fig *Figure, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range fig.Targets() {
		sheet := fmt.Sprintf("target%d", i+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return NewExportError(path, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return NewExportError(path, err)
		}
		if err := writeTarget(f, sheet, t); err != nil {
			return NewExportError(path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return NewExportError(path, err)
	}
	return nil
}

// writeTarget lays out a target on sheet. Row 1 holds the title, row 2 the
// headers and data starts on row 3.
func writeTarget(f *excelize.File, sheet string, t *Target) error {
	if t.Title() != "" {
		if err := f.SetCellValue(sheet, "A1", t.Title()); err != nil {
			return err
		}
	}

	series := t.Lines()
	if sc := t.Scatter(); sc != nil {
		series = append(series[:len(series):len(series)], *sc)
	}

	for i, s := range series {
		xCol, yCol := 2*i+1, 2*i+2
		if err := setCell(f, sheet, xCol, 2, s.Label+" x"); err != nil {
			return err
		}
		if err := setCell(f, sheet, yCol, 2, s.Label+" y"); err != nil {
			return err
		}
		for r := range s.X {
			if err := setCell(f, sheet, xCol, r+3, s.X[r]); err != nil {
				return err
			}
			if err := setCell(f, sheet, yCol, r+3, s.Y[r]); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
