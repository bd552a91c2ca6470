// Package config holds the fixed parameters of one analysis run. Defaults
// are compiled in; a JSON file can override any subset of them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParamsFile is the optional JSON override file. Every field is a pointer
// so an absent key leaves the compiled default in place, the same schema
// style the run accepts on the command line.
type ParamsFile struct {
	MaxAge         *float64           `json:"max_age,omitempty"`
	MinMinutesPct  *float64           `json:"min_minutes_pct,omitempty"`
	SquadMatches   *int               `json:"squad_matches,omitempty"`
	TopN           *int               `json:"top_n,omitempty"`
	CompareN       *int               `json:"compare_n,omitempty"`
	Position       *string            `json:"position,omitempty"`
	Metrics        []string           `json:"metrics,omitempty"`
	Weights        map[string]float64 `json:"weights,omitempty"`
	DisplayMetrics []string           `json:"display_metrics,omitempty"`
	ChartTitle     *string            `json:"chart_title,omitempty"`
	SeriesColors   []string           `json:"series_colors,omitempty"`
}

// Params is the resolved configuration for a run.
type Params struct {
	MaxAge         float64
	MinMinutesPct  float64
	SquadMatches   int
	TopN           int
	CompareN       int
	Position       string
	Metrics        []string
	Weights        map[string]float64
	DisplayMetrics []string
	ChartTitle     string
	SeriesColors   []string
}

// DefaultParams returns the compiled defaults: the midfielder analysis over
// a 14-match competition phase.
func DefaultParams() Params {
	return Params{
		MaxAge:        32,
		MinMinutesPct: 40,
		SquadMatches:  14,
		TopN:          10,
		CompareN:      2,
		Position:      "MF",
		Metrics: []string{
			"Progressive Passes",
			"Key Passes",
			"Interceptions",
			"Tackles",
			"Tackles Won",
			"Passes into Final Third",
			"Long Passes Attempted",
			"Long Passes Success %",
			"Total Passes Attempted",
			"Total Passes Success %",
			"Total Blocks",
		},
		// Keyed by the post-rate-conversion column names the scoring
		// stage actually sees.
		Weights: map[string]float64{
			"Progressive Passes p90":      0.15,
			"Key Passes p90":              0.12,
			"Interceptions p90":           0.10,
			"Tackles p90":                 0.10,
			"Tackle Success %":            0.08,
			"Passes into Final Third p90": 0.12,
			"Long Passes Attempted p90":   0.05,
			"Long Passes Success %":       0.07,
			"Total Passes Attempted p90":  0.05,
			"Total Passes Success %":      0.10,
			"Total Blocks p90":            0.06,
		},
		DisplayMetrics: []string{
			"Progressive Passes p90",
			"Key Passes p90",
			"Passes into Final Third p90",
			"Interceptions p90",
			"Tackles p90",
			"Tackle Success %",
		},
		ChartTitle:   "Top midfielders, head to head",
		SeriesColors: []string{"#1f77b4", "#d62728", "#2ca02c", "#9467bd"},
	}
}

// Load reads a JSON override file and merges it over the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Params, error) {
	p := DefaultParams()
	if path == "" {
		return p, p.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f ParamsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return p, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if f.MaxAge != nil {
		p.MaxAge = *f.MaxAge
	}
	if f.MinMinutesPct != nil {
		p.MinMinutesPct = *f.MinMinutesPct
	}
	if f.SquadMatches != nil {
		p.SquadMatches = *f.SquadMatches
	}
	if f.TopN != nil {
		p.TopN = *f.TopN
	}
	if f.CompareN != nil {
		p.CompareN = *f.CompareN
	}
	if f.Position != nil {
		p.Position = *f.Position
	}
	if f.Metrics != nil {
		p.Metrics = f.Metrics
	}
	if f.Weights != nil {
		p.Weights = f.Weights
	}
	if f.DisplayMetrics != nil {
		p.DisplayMetrics = f.DisplayMetrics
	}
	if f.ChartTitle != nil {
		p.ChartTitle = *f.ChartTitle
	}
	if f.SeriesColors != nil {
		p.SeriesColors = f.SeriesColors
	}

	return p, p.Validate()
}

// Validate rejects parameter combinations that cannot produce a run.
func (p Params) Validate() error {
	if len(p.Metrics) == 0 {
		return fmt.Errorf("config: metrics list is empty")
	}
	if p.MaxAge <= 0 {
		return fmt.Errorf("config: max_age must be positive, got %v", p.MaxAge)
	}
	if p.MinMinutesPct < 0 || p.MinMinutesPct > 100 {
		return fmt.Errorf("config: min_minutes_pct must be in [0,100], got %v", p.MinMinutesPct)
	}
	if p.SquadMatches <= 0 {
		return fmt.Errorf("config: squad_matches must be positive, got %d", p.SquadMatches)
	}
	if p.TopN <= 0 {
		return fmt.Errorf("config: top_n must be positive, got %d", p.TopN)
	}
	if p.CompareN <= 0 {
		return fmt.Errorf("config: compare_n must be positive, got %d", p.CompareN)
	}
	if p.Position == "" {
		return fmt.Errorf("config: position is empty")
	}
	return nil
}
