package pipeline

import (
	"strings"

	"github.com/fieldlens/midfield.report/internal/dataset"
)

// Per90Suffix marks columns that have been converted from season totals to
// per-90-minute rates.
const Per90Suffix = " p90"

// Derived column names for the tackle ratio. The won-tackles rate exists
// only as an intermediate for this ratio and is dropped once it is derived.
const (
	ColTackles       = "Tackles"
	ColTacklesWon    = "Tackles Won"
	ColTackleSuccess = "Tackle Success %"
)

// IsRateMetric reports whether a raw column is already a rate or share and
// must not be divided by minutes. Success-percentage columns are the only
// such inputs.
func IsRateMetric(name string) bool {
	return strings.Contains(name, "%")
}

// CumulativeMetrics returns the subset of metrics that are season totals,
// preserving order.
func CumulativeMetrics(metrics []string) []string {
	var out []string
	for _, m := range metrics {
		if !IsRateMetric(m) {
			out = append(out, m)
		}
	}
	return out
}

// RateColumns maps the raw metric list to the column names the table
// carries after rate conversion: totals gain the p90 suffix, the won-tackles
// intermediate becomes the tackle success ratio, rates keep their names.
func RateColumns(metrics []string) []string {
	out := make([]string, 0, len(metrics))
	for _, m := range metrics {
		switch {
		case m == ColTacklesWon:
			out = append(out, ColTackleSuccess)
		case IsRateMetric(m):
			out = append(out, m)
		default:
			out = append(out, m+Per90Suffix)
		}
	}
	return out
}

// ToPer90 converts every listed season-total column into a per-90 rate and
// renames it with the p90 suffix. A player with zero minutes gets a zero
// rate rather than a division by zero. Missing cells stay missing here; the
// caller coalesces them after all derivations.
func ToPer90(t *dataset.Table, cumulative []string) *dataset.Table {
	out := t.Clone()
	for _, name := range cumulative {
		if !out.HasMetric(name) {
			continue
		}
		for i := range out.Players {
			p := &out.Players[i]
			c, ok := p.Values[name]
			if !ok || !c.Valid {
				continue
			}
			p.Values[name] = dataset.Num(per90(c.Value, p.Minutes))
		}
		out.RenameMetric(name, name+Per90Suffix)
	}
	return out
}

func per90(total, minutes float64) float64 {
	if minutes == 0 {
		return 0
	}
	return total / (minutes / 90)
}

// DeriveTackleSuccess adds the tackle success ratio from the two per-90
// tackle rates and drops the won-tackles intermediate. A zero tackle rate
// yields a zero ratio, not NaN. A table without both tackle columns passes
// through unchanged.
func DeriveTackleSuccess(t *dataset.Table) *dataset.Table {
	won := ColTacklesWon + Per90Suffix
	att := ColTackles + Per90Suffix
	if !t.HasMetric(won) || !t.HasMetric(att) {
		return t.Clone()
	}
	out := t.Clone()
	out.RenameMetric(won, ColTackleSuccess)
	for i := range out.Players {
		p := &out.Players[i]
		w := p.Values[ColTackleSuccess]
		a := p.Values[att]
		if !w.Valid || !a.Valid {
			p.Values[ColTackleSuccess] = dataset.Missing
			continue
		}
		if a.Value == 0 {
			p.Values[ColTackleSuccess] = dataset.Num(0)
			continue
		}
		p.Values[ColTackleSuccess] = dataset.Num(w.Value / a.Value * 100)
	}
	return out
}

// CoalesceMissing replaces every remaining missing cell with zero. This is
// the single point where "missing" and "zero" are conflated, applied once
// after all rate derivations.
func CoalesceMissing(t *dataset.Table) *dataset.Table {
	out := t.Clone()
	for i := range out.Players {
		for _, m := range out.Metrics {
			if c, ok := out.Players[i].Values[m]; !ok || !c.Valid {
				out.Players[i].Values[m] = dataset.Num(0)
			}
		}
	}
	return out
}

// RateConvert runs the full rate-conversion stage: per-90 conversion of the
// season totals, tackle success derivation, and missing-value coalescing.
func RateConvert(t *dataset.Table, metrics []string) *dataset.Table {
	out := ToPer90(t, CumulativeMetrics(metrics))
	out = DeriveTackleSuccess(out)
	return CoalesceMissing(out)
}
