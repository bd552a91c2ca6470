// Package comparison prepares the head-to-head radar view: robust
// percentile bands over the eligible population and clamped metric rows for
// the compared players.
package comparison

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/fieldlens/midfield.report/internal/dataset"
)

// Band is the display range for one metric axis: the population's 95th and
// 5th percentiles. It bounds the radar axes only; scoring never sees it.
type Band struct {
	Upper float64 // 95th percentile
	Lower float64 // 5th percentile
}

// Clamp pulls a value inside the band.
func (b Band) Clamp(v float64) float64 {
	if v < b.Lower {
		return b.Lower
	}
	if v > b.Upper {
		return b.Upper
	}
	return v
}

// Bands computes the per-metric percentile band over the full eligible
// population of the rate-converted table. Quantiles use linear
// interpolation between order statistics.
func Bands(t *dataset.Table, metrics []string) (map[string]Band, error) {
	out := make(map[string]Band, len(metrics))
	for _, name := range metrics {
		if !t.HasMetric(name) {
			return nil, &dataset.SchemaError{Column: name}
		}
		col := t.Column(name)
		if len(col) == 0 {
			return nil, fmt.Errorf("comparison: no population for metric %q", name)
		}
		sort.Float64s(col)
		out[name] = Band{
			Upper: stat.Quantile(0.95, stat.LinInterp, col, nil),
			Lower: stat.Quantile(0.05, stat.LinInterp, col, nil),
		}
	}
	return out, nil
}
