package comparison

import (
	"fmt"

	"github.com/fieldlens/midfield.report/internal/dataset"
	"github.com/fieldlens/midfield.report/internal/scoring"
)

// Matrix is the hand-off structure for the radar renderer. Rows is ordered
// [upper bounds, lower bounds, one row per compared player]; the renderer
// reads the first two rows as axis range, not data.
type Matrix struct {
	Metrics []string
	Players []string
	Rows    [][]float64
}

// Build selects the top n ranked players, pulls their rows from the
// rate-converted (not range-normalized) table so the radar shows original
// units, and clamps each value into the population's percentile band.
// When fewer than n players are ranked, all of them are compared.
func Build(ranked *scoring.ScoreTable, rates *dataset.Table, metrics []string, n int) (*Matrix, error) {
	bands, err := Bands(rates, metrics)
	if err != nil {
		return nil, err
	}

	names := ranked.Names()
	if n > 0 && n < len(names) {
		names = names[:n]
	}

	byName := make(map[string]*dataset.Player, len(rates.Players))
	for i := range rates.Players {
		byName[rates.Players[i].Name] = &rates.Players[i]
	}

	m := &Matrix{
		Metrics: append([]string(nil), metrics...),
		Players: names,
		Rows:    make([][]float64, 0, len(names)+2),
	}

	upper := make([]float64, len(metrics))
	lower := make([]float64, len(metrics))
	for i, name := range metrics {
		upper[i] = bands[name].Upper
		lower[i] = bands[name].Lower
	}
	m.Rows = append(m.Rows, upper, lower)

	for _, player := range names {
		p, ok := byName[player]
		if !ok {
			return nil, fmt.Errorf("comparison: ranked player %q not in rate table", player)
		}
		row := make([]float64, len(metrics))
		for i, name := range metrics {
			row[i] = bands[name].Clamp(p.Values[name].Value)
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}
