// Package plotting renders descriptor slices as line plots for human
// inspection.
package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tangzeyuan/ML-CSC-tutorial/pkg/stats"
)

// Slice is one labeled curve over the descriptor grid.
type Slice struct {
	Label  string
	Values []float64
}

// palette cycles over the curve colors.
var palette = []color.RGBA{
	{R: 220, G: 50, B: 50, A: 255},
	{R: 50, G: 50, B: 220, A: 255},
	{R: 30, G: 150, B: 30, A: 255},
	{R: 200, G: 130, B: 0, A: 255},
	{R: 130, G: 0, B: 180, A: 255},
}

// Histograms draws one curve per slice against the bin-center axis and
// saves the figure as an image file (format picked from the extension).
func Histograms(filename, title, xlabel string, axis []float64, slices []Slice) error {
	if len(slices) == 0 {
		return fmt.Errorf("plot %s: no slices given", filename)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Intensity"
	p.Legend.Top = true

	tallest := 0.0
	for si, sl := range slices {
		if len(sl.Values) != len(axis) {
			return fmt.Errorf("plot %s: slice %q has %d values, axis has %d", filename, sl.Label, len(sl.Values), len(axis))
		}
		if _, hi := stats.MinMax(sl.Values); hi > tallest {
			tallest = hi
		}
		pts := make(plotter.XYs, len(axis))
		for i := range axis {
			pts[i].X = axis[i]
			pts[i].Y = sl.Values[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", filename, err)
		}
		l.Color = palette[si%len(palette)]
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		if sl.Label != "" {
			p.Legend.Add(sl.Label, l)
		}
	}

	// Keep the tallest peak clear of the frame.
	if tallest > 0 {
		p.Y.Max = tallest * 1.05
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("plot %s: %w", filename, err)
	}
	return nil
}
