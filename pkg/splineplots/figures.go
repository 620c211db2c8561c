package splineplots

import (
	"fmt"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
)

// Input tables produced by the interpolation runs.
const (
	InterpTable = "interp.csv"
	ExactTable  = "exact.csv"
	SmoothTable = "smooth.csv"
)

// Legend captions.
const (
	LabelF        = "f_cubic(x)"
	LabelDF       = "df_cubic/dx"
	LabelD2F      = "d²f_cubic/dx²"
	LabelResidual = "10³·(d²f_cubic/dx² + f_cubic(x))"
	LabelConst    = "f(x) = 2"
	LabelSine     = "f(x) = sin(x)"
)

// Names of the built-in figures.
const (
	FigureConst     = "const"
	FigureSmoothing = "smoothing"
	FigureTrigo     = "trigo"
)

// derivatives returns the f, f' and f'' lines of an interpolation table.
func derivatives(table string) []models.SeriesConfig {
	return []models.SeriesConfig{
		{Table: table, X: "x", Y: "y", Label: LabelF},
		{Table: table, X: "x", Y: "dy", Label: LabelDF},
		{Table: table, X: "x", Y: "d2y", Label: LabelD2F},
	}
}

func exact(label string) *models.SeriesConfig {
	return &models.SeriesConfig{Table: ExactTable, X: "x0", Y: "y0", Label: label}
}

// ConstFigure compares the interpolation of a constant function with its samples.
func ConstFigure() models.FigureConfig {
	return models.FigureConfig{
		Name:   FigureConst,
		Output: "const.pdf",
		Targets: []models.TargetConfig{{
			Lines:   derivatives(InterpTable)[:1],
			Scatter: exact(LabelConst),
		}},
	}
}

// SmoothingFigure stacks the raw and smoothed interpolations of sin(x).
func SmoothingFigure() models.FigureConfig {
	return models.FigureConfig{
		Name:   FigureSmoothing,
		Output: "smoothing.pdf",
		HSpace: 0.4,
		Targets: []models.TargetConfig{
			{
				Title:   "Without smoothing",
				Lines:   derivatives(InterpTable),
				Scatter: exact(LabelSine),
			},
			{
				Title:   "With smoothing",
				Lines:   derivatives(SmoothTable),
				Scatter: exact(LabelSine),
			},
		},
	}
}

// TrigoFigure plots the interpolation of sin(x) with the residual f'' + f,
// which vanishes for an exact sinusoid.
func TrigoFigure() models.FigureConfig {
	lines := append(derivatives(InterpTable), models.SeriesConfig{
		Table: InterpTable,
		X:     "x",
		Y:     "d2y",
		Add:   "y",
		Scale: 1e3,
		Label: LabelResidual,
	})
	return models.FigureConfig{
		Name:   FigureTrigo,
		Output: "trigo.pdf",
		Targets: []models.TargetConfig{{
			Lines:   lines,
			Scatter: exact(LabelSine),
		}},
	}
}

// Builtins returns the built-in figures in a fixed order.
func Builtins() []models.FigureConfig {
	return []models.FigureConfig{ConstFigure(), SmoothingFigure(), TrigoFigure()}
}

// Lookup returns the built-in figure with the given name.
func Lookup(name string) (models.FigureConfig, error) {
	for _, cfg := range Builtins() {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return models.FigureConfig{}, fmt.Errorf("%w: %q", ErrUnknownFigure, name)
}
