package parser

import (
	"errors"
	"fmt"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of a workbook. The table is the bounding box
// of non-empty cells; its first row is the header.
func ReadXLSX(path string) (*models.Table, error) {
	// Surface a missing file the same way the text reader does.
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	in.Close()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewMalformedTableError(path, "", 0, fmt.Errorf("open workbook: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, NewMalformedTableError(path, "", 0, errors.New("workbook has no sheets"))
	}

	// Raw values, so number formats such as "0%" or "#,##0.00" do not leak
	// into the parsed text.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewMalformedTableError(path, "", 0, err)
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, NewMalformedTableError(path, "", 0, errors.New("no header row"))
	}

	header := cellRange(rows[minRow], minCol, maxCol)
	var records [][]string
	for r := minRow + 1; r <= maxRow; r++ {
		records = append(records, cellRange(rows[r], minCol, maxCol))
	}

	return buildTable(path, header, records)
}

// cellRange returns row[lo:hi+1], padding short rows with empty cells.
func cellRange(row []string, lo, hi int) []string {
	out := make([]string, hi-lo+1)
	for c := lo; c <= hi && c < len(row); c++ {
		out[c-lo] = row[c]
	}
	return out
}

// findDataBounds locates the table block of a sheet: the bounding box of
// non-empty cells. minRow is the header row and the rows below it up to maxRow
// hold the data; minCol and maxCol delimit the columns. All four are -1 for a
// sheet without any values.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
