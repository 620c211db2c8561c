package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Table offset from A1 to exercise bounds detection
	f.SetCellValue(sheetName, "B2", "x0")
	f.SetCellValue(sheetName, "C2", "y0")
	f.SetCellValue(sheetName, "B3", 0)
	f.SetCellValue(sheetName, "C3", 2)
	f.SetCellValue(sheetName, "B4", 0.5)
	f.SetCellValue(sheetName, "C4", 2.5)

	tmpFile := filepath.Join(t.TempDir(), "exact.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := ReadTable(tmpFile)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if len(table.Columns) != 2 || table.Columns[0] != "x0" || table.Columns[1] != "y0" {
		t.Errorf("Unexpected columns: %q", table.Columns)
	}
	if table.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", table.Len())
	}
	if table.Rows[1][0] != 0.5 || table.Rows[1][1] != 2.5 {
		t.Errorf("Unexpected second row: %v", table.Rows[1])
	}
}

func TestReadXLSXFormattedNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "x0")
	f.SetCellValue(sheetName, "B1", "y0")
	f.SetCellValue(sheetName, "A2", 0.1)
	f.SetCellValue(sheetName, "B2", 1000)

	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "A2", "A2", percent); err != nil {
		t.Fatalf("Failed to set style: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "B2", "B2", thousands); err != nil {
		t.Fatalf("Failed to set style: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "formatted.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	table, err := ReadXLSX(tmpFile)
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	if table.Rows[0][0] != 0.1 || table.Rows[0][1] != 1000 {
		t.Errorf("Expected raw values (0.1, 1000), got %v", table.Rows[0])
	}
}

func TestReadXLSXErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadXLSX(filepath.Join(dir, "absent.xlsx"))
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Errorf("Expected MissingInputError, got %v", err)
	}

	notWorkbook := writeFile(t, dir, "plain.xlsx", "x0,y0\n1,2\n")
	_, err = ReadXLSX(notWorkbook)
	var malformed *MalformedTableError
	if !errors.As(err, &malformed) {
		t.Errorf("Expected MalformedTableError, got %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	empty := filepath.Join(dir, "empty.xlsx")
	if err := f.SaveAs(empty); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	_, err = ReadXLSX(empty)
	if !errors.As(err, &malformed) {
		t.Errorf("Expected MalformedTableError for an empty sheet, got %v", err)
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		rows                   [][]string
		minR, maxR, minC, maxC int
	}{
		{nil, -1, -1, -1, -1},
		{[][]string{{"a"}}, 0, 0, 0, 0},
		{[][]string{{}, {"", "x", "y"}, {"", "1", "2"}}, 1, 2, 1, 2},
		{[][]string{{"", "", "z"}, {"w"}}, 0, 1, 0, 2},
	}

	for i, tt := range tests {
		minR, maxR, minC, maxC := findDataBounds(tt.rows)
		if minR != tt.minR || maxR != tt.maxR || minC != tt.minC || maxC != tt.maxC {
			t.Errorf("case %d: findDataBounds = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
				i, minR, maxR, minC, maxC, tt.minR, tt.maxR, tt.minC, tt.maxC)
		}
	}
}
