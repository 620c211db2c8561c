package models

// Default page size in inches.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
)

// DefaultMarkerSize is the scatter marker area in square points.
const DefaultMarkerSize = 8

// TargetConfig describes one plot surface of a figure.
type TargetConfig struct {
	// Title distinguishes targets that share a figure.
	Title string `json:"title,omitempty"`
	// Lines are drawn in order.
	Lines []SeriesConfig `json:"lines"`
	// Scatter is the optional sparse reference overlay.
	Scatter *SeriesConfig `json:"scatter,omitempty"`
	// MarkerSize is the scatter marker area in square points (0 uses DefaultMarkerSize).
	MarkerSize float64 `json:"marker_size,omitempty"`
}

// FigureConfig describes a complete figure: inputs, series, layout and output.
type FigureConfig struct {
	// Name identifies the figure on the command line.
	Name string `json:"name"`
	// Output is the figure file name, relative to the render directory.
	Output string `json:"output"`
	// Targets are stacked top to bottom.
	Targets []TargetConfig `json:"targets"`
	// HSpace is the vertical gap between targets as a fraction of the
	// average target height.
	HSpace float64 `json:"hspace,omitempty"`
	// Width is the page width in inches (0 uses DefaultWidth).
	Width float64 `json:"width,omitempty"`
	// Height is the page height in inches (0 uses DefaultHeight).
	Height float64 `json:"height,omitempty"`
}

// Tables returns the distinct input tables referenced by the figure, in
// first-use order.
func (c FigureConfig) Tables() []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, t := range c.Targets {
		for _, s := range t.Lines {
			add(s.Table)
		}
		if t.Scatter != nil {
			add(t.Scatter.Table)
		}
	}
	return names
}

// PageSize returns the page size in inches with defaults applied.
func (c FigureConfig) PageSize() (width, height float64) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}

// Size returns the marker area with the default applied.
func (t TargetConfig) Size() float64 {
	if t.MarkerSize == 0 {
		return DefaultMarkerSize
	}
	return t.MarkerSize
}
