// Package models defines data structures for figure rendering.
package models

import "strings"

// Table represents a numeric table loaded from a delimited text file or a workbook.
type Table struct {
	// Path is the file the table was read from.
	Path string `json:"path"`
	// Columns holds the header names verbatim, including any padding.
	Columns []string `json:"columns"`
	// Rows holds the cell values row by row, in file order.
	Rows [][]float64 `json:"rows"`
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of the named column, or -1 if it is absent.
// An exact header match wins; otherwise headers are compared with surrounding
// whitespace removed, so "x" finds a column written as "x  ".
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	want := strings.TrimSpace(name)
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == want {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's values in row order.
func (t *Table) Column(name string) ([]float64, bool) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}
