package pipeline

import (
	"github.com/fieldlens/midfield.report/internal/dataset"
)

// Normalize rescales each metric column independently into [0,1] using the
// column's min and max over the table's (already filtered) population.
// A zero-variance column maps to 0 for every player: with no spread there
// is no ordering information, so nobody gets credit for the metric.
// Identity fields and minutes pass through untouched.
func Normalize(t *dataset.Table) *dataset.Table {
	out := t.Clone()
	for _, name := range out.Metrics {
		col := out.Column(name)
		if len(col) == 0 {
			continue
		}
		lo, hi := col[0], col[0]
		for _, v := range col[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		span := hi - lo
		for i := range out.Players {
			c := out.Players[i].Values[name]
			if span == 0 {
				out.Players[i].Values[name] = dataset.Num(0)
				continue
			}
			out.Players[i].Values[name] = dataset.Num((c.Value - lo) / span)
		}
	}
	return out
}
