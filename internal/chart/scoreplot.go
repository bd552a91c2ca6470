package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fieldlens/midfield.report/internal/scoring"
)

// WriteScoreBars saves a PNG bar chart of the ranked scores, highest first.
func WriteScoreBars(st *scoring.ScoreTable, title, path string) error {
	if len(st.Entries) == 0 {
		return fmt.Errorf("chart: no scores to plot")
	}

	values := make(plotter.Values, len(st.Entries))
	names := make([]string, len(st.Entries))
	for i, e := range st.Entries {
		values[i] = e.Score
		names[i] = e.Player
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Score"
	p.X.Tick.Label.Rotation = -0.6
	p.X.Tick.Label.XAlign = -0.9

	bars, err := plotter.NewBarChart(values, vg.Points(22))
	if err != nil {
		return fmt.Errorf("chart: build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}
