// Package splineplots renders interpolation results against exact reference
// samples and exports the comparison as a vector figure.
package splineplots

import (
	"io"
	"log"
	"path/filepath"
	"strings"
)

// Format represents the output figure format.
type Format string

const (
	// FormatPDF writes a PDF document.
	FormatPDF Format = "pdf"
	// FormatSVG writes an SVG image.
	FormatSVG Format = "svg"
	// FormatEPS writes Encapsulated PostScript.
	FormatEPS Format = "eps"
)

// ParseFormat validates a format name. The empty string is accepted and
// means "use the extension of the configured output".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case "", FormatPDF, FormatSVG, FormatEPS:
		return f, nil
	default:
		return "", NewConfigError("", "format", ErrUnsupportedFormat)
	}
}

// Options configures rendering behavior.
type Options struct {
	// Dir is the directory inputs are read from and figures written to.
	Dir string
	// Format overrides the output extension when set.
	Format Format
	// Workbook additionally writes the plotted series to an .xlsx file
	// next to the figure.
	Workbook bool
	// Logger receives progress messages. If nil, nothing is logged.
	Logger *log.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Dir: ".",
	}
}

// logger returns the configured logger or one that discards everything.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

// path resolves a file name against Dir.
func (o Options) path(name string) string {
	if o.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Dir, name)
}

// OutputPath returns where a figure configured with output will be written,
// with the format override applied.
func (o Options) OutputPath(output string) string {
	p := o.path(output)
	if o.Format != "" {
		p = strings.TrimSuffix(p, filepath.Ext(p)) + "." + string(o.Format)
	}
	return p
}

// outputFormat returns the format implied by path.
func outputFormat(path string) (Format, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil || f == "" {
		return "", NewExportError(path, ErrUnsupportedFormat)
	}
	return f, nil
}
