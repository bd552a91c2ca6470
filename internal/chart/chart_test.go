package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fieldlens/midfield.report/internal/comparison"
	"github.com/fieldlens/midfield.report/internal/scoring"
)

func testMatrix() *comparison.Matrix {
	return &comparison.Matrix{
		Metrics: []string{"Tackles p90", "Key Passes p90"},
		Players: []string{"Ana Silva", "Mia Ortiz"},
		Rows: [][]float64{
			{4.0, 3.0}, // p95 bounds
			{0.5, 0.2}, // p5 bounds
			{3.1, 2.2},
			{2.4, 2.9},
		},
	}
}

func TestRenderRadar(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRadar(testMatrix(), "Head to head", nil, &buf)
	if err != nil {
		t.Fatalf("RenderRadar: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Ana Silva", "Mia Ortiz", "Tackles p90", "Head to head"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderRadarRowMismatch(t *testing.T) {
	m := testMatrix()
	m.Rows = m.Rows[:3] // one player row short
	if err := RenderRadar(m, "t", nil, &bytes.Buffer{}); err == nil {
		t.Error("mismatched rows should be an error")
	}

	m.Rows = m.Rows[:1] // missing a bounds row
	if err := RenderRadar(m, "t", nil, &bytes.Buffer{}); err == nil {
		t.Error("missing bound rows should be an error")
	}
}

func TestRenderRadarShortRow(t *testing.T) {
	m := testMatrix()
	m.Rows[0] = m.Rows[0][:1] // bounds row narrower than the metric list
	if err := RenderRadar(m, "t", nil, &bytes.Buffer{}); err == nil {
		t.Error("row narrower than the metric list should be an error")
	}

	m = testMatrix()
	m.Rows[2] = append(m.Rows[2], 1.0) // player row wider than the metric list
	if err := RenderRadar(m, "t", nil, &bytes.Buffer{}); err == nil {
		t.Error("row wider than the metric list should be an error")
	}
}

func TestWriteRadar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.html")
	if err := WriteRadar(testMatrix(), "t", []string{"#111111", "#222222"}, path); err != nil {
		t.Fatalf("WriteRadar: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("radar file not written: %v", err)
	}
}

func TestWriteScoreBars(t *testing.T) {
	st := &scoring.ScoreTable{Entries: []scoring.Entry{
		{Player: "Ana Silva", Score: 6.1},
		{Player: "Mia Ortiz", Score: 5.4},
	}}
	path := filepath.Join(t.TempDir(), "scores.png")
	if err := WriteScoreBars(st, "Ranking", path); err != nil {
		t.Fatalf("WriteScoreBars: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("score chart not written: %v", err)
	}
}

func TestWriteScoreBarsEmpty(t *testing.T) {
	if err := WriteScoreBars(&scoring.ScoreTable{}, "t", "x.png"); err == nil {
		t.Error("empty table should be an error")
	}
}

func TestSeriesColor(t *testing.T) {
	if c := seriesColor([]string{"#abc"}, 0); c != "#abc" {
		t.Errorf("seriesColor = %q", c)
	}
	if c := seriesColor([]string{"#abc"}, 1); c == "" {
		t.Error("fallback color should not be empty")
	}
}
