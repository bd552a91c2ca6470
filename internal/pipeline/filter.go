// Package pipeline implements the season-analysis transforms: eligibility
// filtering, per-90 rate conversion, and min-max normalization. Every stage
// takes a table and returns a new one; inputs are never mutated.
package pipeline

import (
	"github.com/fieldlens/midfield.report/internal/dataset"
	"github.com/fieldlens/midfield.report/internal/monitoring"
)

// FilterParams bounds the eligible population for one analysis run.
type FilterParams struct {
	Position      string  // required position code, e.g. "MF"
	MaxAge        float64 // inclusive upper bound
	MinMinutesPct float64 // minimum share of possible minutes, in percent
	SquadMatches  int     // matches played by each squad in the phase
}

// MinutesPct returns the share of possible minutes a player was on the
// pitch, in percent, for a phase of the given length.
func MinutesPct(minutes float64, squadMatches int) float64 {
	possible := 90 * float64(squadMatches)
	if possible == 0 {
		return 0
	}
	return minutes / possible * 100
}

// Filter keeps players matching the position with age and minutes inside
// the eligibility bounds. The result is a new table over the same metric
// columns.
func Filter(t *dataset.Table, p FilterParams) *dataset.Table {
	out := &dataset.Table{Metrics: append([]string(nil), t.Metrics...)}
	for _, pl := range t.Players {
		if pl.Position != p.Position {
			continue
		}
		if pl.Age > p.MaxAge {
			continue
		}
		if MinutesPct(pl.Minutes, p.SquadMatches) < p.MinMinutesPct {
			continue
		}
		cp := pl
		cp.Values = make(map[string]dataset.Cell, len(pl.Values))
		for k, v := range pl.Values {
			cp.Values[k] = v
		}
		out.Players = append(out.Players, cp)
	}
	monitoring.Logf("filter: %d of %d players eligible (pos=%s age<=%v minutes>=%v%%)",
		len(out.Players), len(t.Players), p.Position, p.MaxAge, p.MinMinutesPct)
	return out
}
