// Package dataset holds the in-memory tabular model for one competition
// season of player statistics, plus the CSV decoding that produces it.
package dataset

// Cell is one numeric value in a metric column. Valid distinguishes a
// genuinely observed value from a missing cell; missing cells survive until
// the rate-conversion stage coalesces them to zero.
type Cell struct {
	Value float64
	Valid bool
}

// Num returns a valid cell holding v.
func Num(v float64) Cell { return Cell{Value: v, Valid: true} }

// Missing is the zero-value cell for an absent reading.
var Missing = Cell{}

// Player is one player-season row: identity fields plus a metric map.
type Player struct {
	Name     string
	Squad    string
	Position string
	Age      float64
	Minutes  float64
	Values   map[string]Cell
}

// Table is an ordered set of metric columns over a roster of players.
// Metrics carries column order; Values maps are keyed by the same names.
type Table struct {
	Metrics []string
	Players []Player
}

// Clone deep-copies the table so pipeline stages can return new values
// without aliasing their input.
func (t *Table) Clone() *Table {
	out := &Table{
		Metrics: append([]string(nil), t.Metrics...),
		Players: make([]Player, len(t.Players)),
	}
	for i, p := range t.Players {
		cp := p
		cp.Values = make(map[string]Cell, len(p.Values))
		for k, v := range p.Values {
			cp.Values[k] = v
		}
		out.Players[i] = cp
	}
	return out
}

// HasMetric reports whether the named column is present.
func (t *Table) HasMetric(name string) bool {
	for _, m := range t.Metrics {
		if m == name {
			return true
		}
	}
	return false
}

// Column collects the named metric across all players. Missing cells
// contribute zero, matching the coalescing policy applied at the end of
// rate conversion.
func (t *Table) Column(name string) []float64 {
	out := make([]float64, len(t.Players))
	for i, p := range t.Players {
		if c, ok := p.Values[name]; ok && c.Valid {
			out[i] = c.Value
		}
	}
	return out
}

// DropMetric removes a column from the schema and from every player row.
func (t *Table) DropMetric(name string) {
	kept := t.Metrics[:0]
	for _, m := range t.Metrics {
		if m != name {
			kept = append(kept, m)
		}
	}
	t.Metrics = kept
	for i := range t.Players {
		delete(t.Players[i].Values, name)
	}
}

// RenameMetric renames a column in place, preserving its position.
func (t *Table) RenameMetric(from, to string) {
	for i, m := range t.Metrics {
		if m == from {
			t.Metrics[i] = to
		}
	}
	for i := range t.Players {
		if c, ok := t.Players[i].Values[from]; ok {
			delete(t.Players[i].Values, from)
			t.Players[i].Values[to] = c
		}
	}
}
