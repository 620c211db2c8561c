package splineplots

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// MarkerRadius converts a marker area in square points, the unit scatter
// sizes are quoted in, to the radius of a circular glyph.
func MarkerRadius(area float64) vg.Length {
	if area <= 0 {
		return 0
	}
	return vg.Points(math.Sqrt(area) / 2)
}

// TileGap returns the vertical gap between rows stacked over height so that
// the gap equals hspace times the height of one row.
func TileGap(height vg.Length, rows int, hspace float64) vg.Length {
	if rows < 2 || hspace <= 0 {
		return 0
	}
	n := float64(rows)
	row := float64(height) / (n + hspace*(n-1))
	return vg.Length(hspace * row)
}
