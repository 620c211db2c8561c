package splineplots

import (
	"errors"
	"fmt"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/parser"
)

// ErrUnknownFigure indicates a requested built-in figure does not exist.
var ErrUnknownFigure = errors.New("unknown figure")

// ErrUnsupportedFormat indicates an output format the renderer cannot write.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrExported indicates a figure was changed or exported again after export.
var ErrExported = errors.New("figure already exported")

// MissingInputError indicates an input table does not exist or cannot be read.
type MissingInputError = parser.MissingInputError

// MalformedTableError indicates an input table lacks a required column or
// holds values that are not numeric.
type MalformedTableError = parser.MalformedTableError

// ExportError represents a failure to write a figure or workbook.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %q: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(path string, err error) *ExportError {
	return &ExportError{Path: path, Err: err}
}

// ConfigError represents an invalid figure configuration.
type ConfigError struct {
	Figure string
	Field  string // e.g. "output", "targets[1].lines[0].x"
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("figure %q: invalid %s: %v", e.Figure, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(figure, field string, err error) *ConfigError {
	return &ConfigError{
		Figure: figure,
		Field:  field,
		Err:    err,
	}
}
