package sweep

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders the live population of every successful result over
// ticks. The image format follows the file extension.
func WritePlot(path string, results []Result) error {
	p := plot.New()
	p.Title.Text = "Live population"
	p.X.Label.Text = "Tick"
	p.Y.Label.Text = "Alive cells"

	for i, res := range results {
		if res.Err != nil || len(res.Alive) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(res.Alive))
		for t, n := range res.Alive {
			pts[t] = plotter.XY{X: float64(t), Y: float64(n)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", res.Scenario, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i / len(plotutil.DefaultColors))
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(res.Scenario.String(), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 6*vg.Inch, filepath.Clean(path)); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
