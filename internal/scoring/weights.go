// Package scoring turns a normalized metric table into a ranked score
// table using a weighted linear combination.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/fieldlens/midfield.report/internal/monitoring"
)

// Weights maps metric-name to relative importance. Keying by name rather
// than by position means a reordered metric list can never silently
// misalign a weight with the wrong column.
type Weights map[string]float64

// ConfigError reports a weight set that does not line up with the metric
// set in use. It is fatal before any score is computed.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "scoring: " + e.Reason
}

// Validate checks the weight set against the exact metric list: every
// metric must have a weight, no weight may name an unknown metric, and no
// weight may be negative. A sum away from 1.0 is only logged; the source
// analysis never enforced it.
func (w Weights) Validate(metrics []string) error {
	for _, m := range metrics {
		if _, ok := w[m]; !ok {
			return &ConfigError{Reason: fmt.Sprintf("no weight for metric %q", m)}
		}
	}
	known := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		known[m] = true
	}
	names := make([]string, 0, len(w))
	for name := range w {
		names = append(names, name)
	}
	sort.Strings(names)
	sum := 0.0
	for _, name := range names {
		if !known[name] {
			return &ConfigError{Reason: fmt.Sprintf("weight for unknown metric %q", name)}
		}
		v := w[name]
		if v < 0 {
			return &ConfigError{Reason: fmt.Sprintf("negative weight %f for metric %q", v, name)}
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 0.01 {
		monitoring.Logf("scoring: weights sum to %.4f, expected ~1.0", sum)
	}
	return nil
}
