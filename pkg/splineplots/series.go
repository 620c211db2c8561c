package splineplots

import (
	"gonum.org/v1/gonum/floats"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/parser"
)

// SelectSeries extracts the configured columns of table as a series and
// applies the optional scale-and-sum transform to the dependent values.
// Rows keep their file order.
func SelectSeries(table *models.Table, cfg models.SeriesConfig) (models.Series, error) {
	xs, err := column(table, cfg.X)
	if err != nil {
		return models.Series{}, err
	}
	ys, err := column(table, cfg.Y)
	if err != nil {
		return models.Series{}, err
	}

	if cfg.Transformed() {
		addend := make([]float64, len(ys))
		if cfg.Add != "" {
			if addend, err = column(table, cfg.Add); err != nil {
				return models.Series{}, err
			}
		}
		ys = ScaledSum(cfg.ScaleFactor(), ys, addend)
	}

	return models.Series{
		Label: cfg.Label,
		X:     xs,
		Y:     ys,
	}, nil
}

// ScaledSum returns scale*(a[i]+b[i]) for every i. It panics if the slices
// differ in length.
func ScaledSum(scale float64, a, b []float64) []float64 {
	dst := make([]float64, len(a))
	floats.AddTo(dst, a, b)
	floats.Scale(scale, dst)
	return dst
}

func column(table *models.Table, name string) ([]float64, error) {
	values, ok := table.Column(name)
	if !ok {
		return nil, parser.NewMalformedTableError(table.Path, name, 0, parser.ErrNoColumn)
	}
	return values, nil
}
