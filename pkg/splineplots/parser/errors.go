package parser

import (
	"errors"
	"fmt"
)

// ErrNoRows indicates a table has a header but no data.
var ErrNoRows = errors.New("table has no data rows")

// ErrNoColumn indicates a requested column is not in the table header.
var ErrNoColumn = errors.New("column not found")

// MissingInputError indicates an input table does not exist or cannot be read.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input %q: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// NewMissingInputError creates a new MissingInputError.
func NewMissingInputError(path string, err error) *MissingInputError {
	return &MissingInputError{Path: path, Err: err}
}

// MalformedTableError indicates an input table is readable but unusable:
// a bad cell, a ragged row, no rows, or a missing column.
type MalformedTableError struct {
	Path   string
	Column string // set when a column is missing or holds a bad value
	Row    int    // 1-based data row, 0 when not row specific
	Err    error
}

func (e *MalformedTableError) Error() string {
	switch {
	case e.Column != "" && e.Row > 0:
		return fmt.Sprintf("malformed table %q (row %d, column %q): %v", e.Path, e.Row, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("malformed table %q (column %q): %v", e.Path, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("malformed table %q (row %d): %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("malformed table %q: %v", e.Path, e.Err)
}

func (e *MalformedTableError) Unwrap() error {
	return e.Err
}

// NewMalformedTableError creates a new MalformedTableError.
func NewMalformedTableError(path, column string, row int, err error) *MalformedTableError {
	return &MalformedTableError{
		Path:   path,
		Column: column,
		Row:    row,
		Err:    err,
	}
}
