package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fieldlens/midfield.report/internal/comparison"
	"github.com/fieldlens/midfield.report/internal/config"
	"github.com/fieldlens/midfield.report/internal/dataset"
	"github.com/fieldlens/midfield.report/internal/monitoring"
	"github.com/fieldlens/midfield.report/internal/pipeline"
	"github.com/fieldlens/midfield.report/internal/scoring"
)

func init() {
	monitoring.SetLogger(nil)
}

// seasonCSV is a small but complete input covering every default metric.
const seasonCSV = `Pos,Player,Squad,Age,Min,Progressive Passes,Key Passes,Interceptions,Tackles,Tackles Won,Passes into Final Third,Long Passes Attempted,Long Passes Success %,Total Passes Attempted,Total Passes Success %,Total Blocks
MF,Ana Silva,River,28,1100,48,31,20,24,14,52,40,61.0,520,84.1,9
MF,Mia Ortiz,Lanus,22,900,39,22,25,30,18,40,35,55.2,430,79.0,12
MF,Eva Duarte,Banfield,25,1000,44,28,15,18,9,47,30,58.8,470,81.5,7
MF,Sol Paredes,Tigre,31,760,28,12,18,26,13,30,44,49.9,390,76.2,10
MF,Too Old,Union,35,1200,50,33,22,25,15,54,41,62.0,530,85.0,8
MF,Benchwarmer,Union,21,300,10,6,4,5,3,9,8,51.0,90,74.0,2
DF,Stopper,River,26,1200,20,4,30,40,28,18,50,54.0,480,80.0,20
`

func runPipeline(t *testing.T) (config.Params, *scoring.ScoreTable, *comparison.Matrix) {
	t.Helper()
	params := config.DefaultParams()

	table, err := dataset.FromCSV(strings.NewReader(seasonCSV), params.Metrics)
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	eligible := pipeline.Filter(table, pipeline.FilterParams{
		Position:      params.Position,
		MaxAge:        params.MaxAge,
		MinMinutesPct: params.MinMinutesPct,
		SquadMatches:  params.SquadMatches,
	})
	rates := pipeline.RateConvert(eligible, params.Metrics)
	normalized := pipeline.Normalize(rates)

	ranked, err := scoring.Score(normalized, params.Weights, params.TopN)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	matrix, err := comparison.Build(ranked, rates, params.DisplayMetrics, params.CompareN)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return params, ranked, matrix
}

func TestFullRun(t *testing.T) {
	_, ranked, matrix := runPipeline(t)

	// Too Old (35), Benchwarmer (under the minutes floor) and the DF are
	// all ineligible; four midfielders remain.
	if len(ranked.Entries) != 4 {
		t.Fatalf("ranked %d players, want 4: %v", len(ranked.Entries), ranked.Names())
	}
	for _, name := range ranked.Names() {
		switch name {
		case "Too Old", "Benchwarmer", "Stopper":
			t.Errorf("ineligible player %q was ranked", name)
		}
	}

	for i := 1; i < len(ranked.Entries); i++ {
		if ranked.Entries[i-1].Score < ranked.Entries[i].Score {
			t.Error("ranking not sorted descending")
		}
	}

	if len(matrix.Players) != 2 {
		t.Errorf("compared %d players, want 2", len(matrix.Players))
	}
	if len(matrix.Rows) != 4 {
		t.Errorf("matrix has %d rows, want bounds + 2 players", len(matrix.Rows))
	}
	if matrix.Players[0] != ranked.Entries[0].Player {
		t.Error("comparison should lead with the top-ranked player")
	}
}

func TestFullRunDeterministic(t *testing.T) {
	_, a, _ := runPipeline(t)
	_, b, _ := runPipeline(t)
	if len(a.Entries) != len(b.Entries) {
		t.Fatal("re-run produced a different table size")
	}
	for i := range a.Entries {
		if a.Entries[i] != b.Entries[i] {
			t.Errorf("row %d differs between runs: %+v vs %+v", i, a.Entries[i], b.Entries[i])
		}
	}
}

func TestWriteRankingCSV(t *testing.T) {
	_, ranked, _ := runPipeline(t)

	path := filepath.Join(t.TempDir(), "ranking.csv")
	if err := writeRankingCSV(ranked, path); err != nil {
		t.Fatalf("writeRankingCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != len(ranked.Entries)+1 {
		t.Errorf("csv has %d rows, want header + %d", len(recs), len(ranked.Entries))
	}
	if recs[0][0] != "rank" || recs[1][0] != "1" {
		t.Errorf("unexpected csv head: %v", recs[:2])
	}
	if recs[1][1] != ranked.Entries[0].Player {
		t.Errorf("top csv row player = %q, want %q", recs[1][1], ranked.Entries[0].Player)
	}
}
