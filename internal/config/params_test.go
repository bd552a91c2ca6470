package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	sum := 0.0
	for _, w := range p.Weights {
		sum += w
	}
	if sum < 0.99 || sum > 1.01 {
		t.Errorf("default weights sum to %v, want ~1.0", sum)
	}
	for _, m := range p.DisplayMetrics {
		if _, ok := p.Weights[m]; !ok {
			t.Errorf("display metric %q has no weight entry", m)
		}
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if p.SquadMatches != 14 || p.MaxAge != 32 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.json")
	doc := `{"max_age": 29, "top_n": 5, "metrics": ["Tackles"], "weights": {"Tackles p90": 1.0}}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.MaxAge != 29 || p.TopN != 5 {
		t.Errorf("overrides not applied: %+v", p)
	}
	if p.SquadMatches != 14 {
		t.Error("absent key should keep the default")
	}
	if len(p.Metrics) != 1 || p.Metrics[0] != "Tackles" {
		t.Errorf("metrics override not applied: %v", p.Metrics)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero top_n", `{"top_n": 0}`},
		{"negative max_age", `{"max_age": -1}`},
		{"empty metrics", `{"metrics": []}`},
		{"minutes pct over 100", `{"min_minutes_pct": 120}`},
		{"zero squad matches", `{"squad_matches": 0}`},
		{"zero compare_n", `{"compare_n": 0}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "params.json")
			if err := os.WriteFile(path, []byte(tt.doc), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%s) should fail", tt.doc)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("missing file should be an error")
	}
}
