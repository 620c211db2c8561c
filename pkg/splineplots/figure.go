package splineplots

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
)

// Target is one plot surface of a figure. Series added to a target are drawn
// only on that target.
type Target struct {
	fig        *Figure
	title      string
	lines      []models.Series
	scatter    *models.Series
	markerSize float64
}

// AddLine appends a line series. Lines are drawn in the order they are added.
func (t *Target) AddLine(s models.Series) error {
	if t.fig.exported {
		return ErrExported
	}
	t.lines = append(t.lines, s)
	return nil
}

// AddScatter sets the sparse marker overlay. markerSize is the marker area in
// square points; a later call replaces an earlier one.
func (t *Target) AddScatter(s models.Series, markerSize float64) error {
	if t.fig.exported {
		return ErrExported
	}
	t.scatter = &s
	t.markerSize = markerSize
	return nil
}

// SetTitle sets the caption drawn above the target.
func (t *Target) SetTitle(text string) error {
	if t.fig.exported {
		return ErrExported
	}
	t.title = text
	return nil
}

// Title returns the target caption.
func (t *Target) Title() string { return t.title }

// Lines returns the line series in draw order.
func (t *Target) Lines() []models.Series { return t.lines }

// Scatter returns the marker overlay, or nil if none was added.
func (t *Target) Scatter() *models.Series { return t.scatter }

// Figure is a set of targets stacked vertically and exported as one file.
// A figure is single use: once exported it rejects further changes.
type Figure struct {
	targets  []*Target
	width    vg.Length
	height   vg.Length
	hspace   float64
	exported bool
}

// NewFigure creates a figure with n empty targets on a width x height inch page.
func NewFigure(n int, width, height, hspace float64) *Figure {
	fig := &Figure{
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
		hspace: hspace,
	}
	for i := 0; i < n; i++ {
		fig.targets = append(fig.targets, &Target{fig: fig})
	}
	return fig
}

// Target returns the i-th target, counted from the top.
func (f *Figure) Target(i int) *Target {
	return f.targets[i]
}

// Targets returns all targets from top to bottom.
func (f *Figure) Targets() []*Target {
	return f.targets
}

// Export draws the figure and writes it to path in the format given by the
// path's extension. The file is replaced atomically: on failure nothing is
// left at path.
func (f *Figure) Export(path string) error {
	if f.exported {
		return NewExportError(path, ErrExported)
	}

	format, err := outputFormat(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.draw(&buf, format); err != nil {
		return NewExportError(path, err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return NewExportError(path, err)
	}

	f.exported = true
	return nil
}

// draw renders every target onto one canvas and writes the encoded canvas to buf.
func (f *Figure) draw(buf *bytes.Buffer, format Format) error {
	plots := make([][]*plot.Plot, len(f.targets))
	for i, t := range f.targets {
		p, err := t.plot()
		if err != nil {
			return fmt.Errorf("target %d: %w", i+1, err)
		}
		plots[i] = []*plot.Plot{p}
	}

	c, err := draw.NewFormattedCanvas(f.width, f.height, string(format))
	if err != nil {
		return err
	}
	dc := draw.New(c)

	if len(plots) == 1 {
		plots[0][0].Draw(dc)
	} else if len(plots) > 1 {
		tiles := draw.Tiles{
			Rows: len(plots),
			Cols: 1,
			PadY: TileGap(f.height, len(plots), f.hspace),
		}
		canvases := plot.Align(plots, tiles, dc)
		for i := range plots {
			plots[i][0].Draw(canvases[i][0])
		}
	}

	_, err = c.WriteTo(buf)
	return err
}

// plot builds the gonum plot for the target, with its own legend. Colours
// follow the default cycle in the order series were added, the scatter last.
func (t *Target) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = t.title
	p.Legend.Top = true

	for i, s := range t.lines {
		l, err := plotter.NewLine(xys(s))
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", s.Label, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Label, l)
	}

	if t.scatter != nil {
		sc, err := plotter.NewScatter(xys(*t.scatter))
		if err != nil {
			return nil, fmt.Errorf("scatter %q: %w", t.scatter.Label, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(len(t.lines))
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = MarkerRadius(t.markerSize)
		p.Add(sc)
		p.Legend.Add(t.scatter.Label, sc)
	}

	return p, nil
}

func xys(s models.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.X))
	for i := range pts {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts
}

// writeFileAtomic writes data to a temporary file beside path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
