package scoring

import (
	"math"
	"sort"

	"github.com/fieldlens/midfield.report/internal/dataset"
)

// Entry is one ranked row: identity fields plus the composite score.
type Entry struct {
	Player  string
	Squad   string
	Age     float64
	Minutes float64
	Score   float64
}

// ScoreTable is the ranked output of one run, sorted by Score descending
// and truncated to the requested length.
type ScoreTable struct {
	Entries []Entry
}

// Names returns the ranked player names in order.
func (st *ScoreTable) Names() []string {
	out := make([]string, len(st.Entries))
	for i, e := range st.Entries {
		out[i] = e.Player
	}
	return out
}

// Score ranks the table's players by the weighted sum of their normalized
// metrics: round(10 * Σ weight(m) * value(m), 3). The sort is stable, so
// equal scores keep the input's relative order. When fewer than topN
// players are eligible the whole population is returned.
func Score(t *dataset.Table, w Weights, topN int) (*ScoreTable, error) {
	if err := w.Validate(t.Metrics); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(t.Players))
	for i, p := range t.Players {
		sum := 0.0
		for _, m := range t.Metrics {
			sum += w[m] * p.Values[m].Value
		}
		entries[i] = Entry{
			Player:  p.Name,
			Squad:   p.Squad,
			Age:     p.Age,
			Minutes: p.Minutes,
			Score:   round3(10 * sum),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if topN > 0 && topN < len(entries) {
		entries = entries[:topN]
	}
	return &ScoreTable{Entries: entries}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
