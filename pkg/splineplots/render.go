package splineplots

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/parser"
)

// Result describes an exported figure.
type Result struct {
	// Name is the figure name.
	Name string
	// Path is the figure file written.
	Path string
	// Workbook is the series workbook written, empty if none.
	Workbook string
	// Figure is the exported figure.
	Figure *Figure
}

// Render loads the tables cfg references, draws every target and exports the
// figure. All inputs are read before anything is written, so a missing or
// malformed table leaves no output behind.
func Render(cfg models.FigureConfig, opts Options) (*Result, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	logger := opts.logger()

	tables := make(map[string]*models.Table)
	for _, name := range cfg.Tables() {
		t, err := parser.ReadTable(opts.path(name))
		if err != nil {
			return nil, err
		}
		logger.Printf("%s: loaded %s (%d rows)", cfg.Name, name, t.Len())
		tables[name] = t
	}

	width, height := cfg.PageSize()
	fig := NewFigure(len(cfg.Targets), width, height, cfg.HSpace)

	for i, tc := range cfg.Targets {
		target := fig.Target(i)
		for _, sc := range tc.Lines {
			s, err := SelectSeries(tables[sc.Table], sc)
			if err != nil {
				return nil, err
			}
			if err := target.AddLine(s); err != nil {
				return nil, err
			}
		}
		if tc.Scatter != nil {
			s, err := SelectSeries(tables[tc.Scatter.Table], *tc.Scatter)
			if err != nil {
				return nil, err
			}
			if err := target.AddScatter(s, tc.Size()); err != nil {
				return nil, err
			}
		}
		if tc.Title != "" {
			if err := target.SetTitle(tc.Title); err != nil {
				return nil, err
			}
		}
	}

	out := opts.OutputPath(cfg.Output)
	if err := fig.Export(out); err != nil {
		return nil, err
	}
	logger.Printf("%s: wrote %s", cfg.Name, out)

	result := &Result{
		Name:   cfg.Name,
		Path:   out,
		Figure: fig,
	}

	if opts.Workbook {
		book := strings.TrimSuffix(out, filepath.Ext(out)) + ".xlsx"
		if err := WriteWorkbook(fig, book); err != nil {
			return nil, fmt.Errorf("figure %q written, series workbook failed: %w", cfg.Name, err)
		}
		logger.Printf("%s: wrote %s", cfg.Name, book)
		result.Workbook = book
	}

	return result, nil
}

// RenderAll renders each figure in order and stops at the first failure.
func RenderAll(cfgs []models.FigureConfig, opts Options) ([]*Result, error) {
	results := make([]*Result, 0, len(cfgs))
	for _, cfg := range cfgs {
		r, err := Render(cfg, opts)
		if err != nil {
			return results, fmt.Errorf("render %s: %w", cfg.Name, err)
		}
		results = append(results, r)
	}
	return results, nil
}
