// Package parser reads numeric tables from delimited text files and workbooks.
package parser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
)

var (
	// errEmptyCell is reported for blank cells inside the data block.
	errEmptyCell = errors.New("empty cell")
	// errNotFinite is reported for NaN and infinite cells, which cannot be drawn.
	errNotFinite = errors.New("value is not finite")
)

// ReadTable reads the table at path, choosing the reader by file extension.
// Workbooks (.xlsx) are read with excelize; everything else is treated as
// delimited text.
func ReadTable(path string) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	case ".tsv":
		return ReadDelimited(path, '\t')
	default:
		return ReadDelimited(path, ',')
	}
}

// openInput opens path for reading, reporting any failure as a MissingInputError.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewMissingInputError(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, NewMissingInputError(path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, NewMissingInputError(path, errors.New("is a directory"))
	}
	return f, nil
}

// buildTable converts raw string records into a numeric table. Records may be
// shorter than the header; the missing cells count as empty.
func buildTable(path string, header []string, records [][]string) (*models.Table, error) {
	if len(records) == 0 {
		return nil, NewMalformedTableError(path, "", 0, ErrNoRows)
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(header))
		for j := range header {
			var cell string
			if j < len(rec) {
				cell = rec[j]
			}
			v, err := parseValue(cell)
			if err != nil {
				return nil, NewMalformedTableError(path, header[j], i+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return &models.Table{
		Path:    path,
		Columns: header,
		Rows:    rows,
	}, nil
}

// parseValue parses a cell as a finite float64. Surrounding whitespace is ignored.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyCell
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
