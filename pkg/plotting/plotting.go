package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Scatter renders a distribution sample as a log-log scatter plot and
// writes it to path as a PNG. X is the count value and Y the 1-based rank
// in input order. Zero counts cannot be placed on a log axis and are left
// out of the plot; they still participate in the numeric analysis.
func Scatter(title string, sample []int, path string, widthInches, heightInches float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "count"
	p.Y.Label.Text = "rank"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	pts := make(plotter.XYs, 0, len(sample))
	for i, v := range sample {
		if v < 1 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(v), Y: float64(i + 1)})
	}

	if len(pts) == 0 {
		// Log axes cannot autoscale over an empty series.
		p.X.Min, p.X.Max = 1, 10
		p.Y.Min, p.Y.Max = 1, 10
	} else {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("failed to build scatter series: %w", err)
		}
		scatter.GlyphStyle.Color = color.NRGBA{R: 200, A: 128}
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
		p.Legend.Add("job categories", scatter)
	}

	width := vg.Length(widthInches) * vg.Inch
	height := vg.Length(heightInches) * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to write plot %s: %w", path, err)
	}
	return nil
}
