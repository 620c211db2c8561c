package models

// Series is a labelled pair of sequences ready to be drawn.
type Series struct {
	// Label is shown verbatim in the legend.
	Label string `json:"label"`
	// X holds the independent values.
	X []float64 `json:"x"`
	// Y holds the dependent values; Y[i] belongs to X[i].
	Y []float64 `json:"y"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.X)
}

// SeriesConfig selects a series from a table.
type SeriesConfig struct {
	// Table is the input file name, relative to the render directory.
	Table string `json:"table"`
	// X is the independent column.
	X string `json:"x"`
	// Y is the dependent column.
	Y string `json:"y"`
	// Add is an optional second column summed into Y before scaling.
	Add string `json:"add,omitempty"`
	// Scale multiplies the dependent values. Zero means no scaling.
	Scale float64 `json:"scale,omitempty"`
	// Label is the legend caption.
	Label string `json:"label"`
}

// Transformed reports whether the dependent values are rewritten after selection.
func (c SeriesConfig) Transformed() bool {
	return c.Add != "" || (c.Scale != 0 && c.Scale != 1)
}

// ScaleFactor returns the effective multiplier for the dependent values.
func (c SeriesConfig) ScaleFactor() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}
