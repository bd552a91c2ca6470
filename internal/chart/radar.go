// Package chart renders the run's outputs: a radar chart comparing the top
// players and a bar chart of the ranked scores.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fieldlens/midfield.report/internal/comparison"
)

// defaultSeriesColors is used when the caller supplies fewer colors than
// players.
var defaultSeriesColors = []string{"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#ff7f0e"}

// RenderRadar writes a standalone HTML radar chart for the comparison
// matrix. The matrix's first two rows bound each axis (95th and 5th
// percentile of the eligible population); the remaining rows become one
// series per player.
func RenderRadar(m *comparison.Matrix, title string, colors []string, w io.Writer) error {
	if len(m.Rows) < 2 {
		return fmt.Errorf("chart: comparison matrix missing bound rows")
	}
	if len(m.Rows)-2 != len(m.Players) {
		return fmt.Errorf("chart: %d data rows for %d players", len(m.Rows)-2, len(m.Players))
	}
	for i, row := range m.Rows {
		if len(row) != len(m.Metrics) {
			return fmt.Errorf("chart: row %d has %d values for %d metrics", i, len(row), len(m.Metrics))
		}
	}

	indicators := make([]*opts.Indicator, len(m.Metrics))
	for i, name := range m.Metrics {
		indicators[i] = &opts.Indicator{
			Name: name,
			Max:  float32(m.Rows[0][i]),
			Min:  float32(m.Rows[1][i]),
		}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			Shape:       "polygon",
			SplitNumber: 5,
			SplitArea:   &opts.SplitArea{Show: opts.Bool(true)},
			SplitLine:   &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	for i, player := range m.Players {
		c := seriesColor(colors, i)
		radar.AddSeries(player,
			[]opts.RadarData{{Name: player, Value: m.Rows[i+2]}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: c, Width: 2}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.15)}),
		)
	}

	if err := radar.Render(w); err != nil {
		return fmt.Errorf("chart: render radar: %w", err)
	}
	return nil
}

// WriteRadar renders the radar chart into an HTML file at path.
func WriteRadar(m *comparison.Matrix, title string, colors []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chart: create %s: %w", path, err)
	}
	defer f.Close()
	return RenderRadar(m, title, colors, f)
}

func seriesColor(colors []string, i int) string {
	if i < len(colors) {
		return colors[i]
	}
	return defaultSeriesColors[i%len(defaultSeriesColors)]
}
