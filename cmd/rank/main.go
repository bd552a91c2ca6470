// Command rank scores one season of midfielder statistics and writes the
// ranked table, a radar comparison of the top players, and optional
// database and chart artefacts. It is a one-shot batch run: read the CSV,
// transform, write outputs, exit.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/fieldlens/midfield.report/internal/chart"
	"github.com/fieldlens/midfield.report/internal/comparison"
	"github.com/fieldlens/midfield.report/internal/config"
	"github.com/fieldlens/midfield.report/internal/dataset"
	"github.com/fieldlens/midfield.report/internal/monitoring"
	"github.com/fieldlens/midfield.report/internal/pipeline"
	"github.com/fieldlens/midfield.report/internal/resultsdb"
	"github.com/fieldlens/midfield.report/internal/scoring"
	"github.com/fieldlens/midfield.report/internal/version"
)

var (
	csvPath     = flag.String("csv", "", "Season stats CSV (required)")
	configPath  = flag.String("config", "", "Optional JSON parameter overrides")
	outDir      = flag.String("out", "out", "Directory for generated artefacts")
	dbPath      = flag.String("db", "", "Optional sqlite file to record the run into")
	quiet       = flag.Bool("quiet", false, "Suppress progress logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Printf("midfield.report %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}
	if *csvPath == "" {
		flag.Usage()
		log.Fatal("missing -csv")
	}
	if *quiet {
		monitoring.SetLogger(nil)
	}

	params, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load parameters: %v", err)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open stats file: %v", err)
	}
	table, err := dataset.FromCSV(f, params.Metrics)
	f.Close()
	if err != nil {
		log.Fatalf("decode stats file: %v", err)
	}

	eligible := pipeline.Filter(table, pipeline.FilterParams{
		Position:      params.Position,
		MaxAge:        params.MaxAge,
		MinMinutesPct: params.MinMinutesPct,
		SquadMatches:  params.SquadMatches,
	})
	if len(eligible.Players) == 0 {
		log.Fatalf("no eligible players after filtering %d rows", len(table.Players))
	}

	// The rate table is kept alongside the normalized one: the radar view
	// reads original per-90 units, scoring reads [0,1] values.
	rates := pipeline.RateConvert(eligible, params.Metrics)
	normalized := pipeline.Normalize(rates)

	ranked, err := scoring.Score(normalized, params.Weights, params.TopN)
	if err != nil {
		log.Fatalf("score players: %v", err)
	}

	matrix, err := comparison.Build(ranked, rates, params.DisplayMetrics, params.CompareN)
	if err != nil {
		log.Fatalf("build comparison: %v", err)
	}

	printRanking(ranked)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	csvOut := filepath.Join(*outDir, "ranking.csv")
	if err := writeRankingCSV(ranked, csvOut); err != nil {
		log.Fatalf("write ranking: %v", err)
	}
	radarOut := filepath.Join(*outDir, "radar.html")
	if err := chart.WriteRadar(matrix, params.ChartTitle, params.SeriesColors, radarOut); err != nil {
		log.Fatalf("write radar chart: %v", err)
	}
	barsOut := filepath.Join(*outDir, "scores.png")
	if err := chart.WriteScoreBars(ranked, "Composite scores", barsOut); err != nil {
		log.Fatalf("write score chart: %v", err)
	}
	monitoring.Logf("wrote %s, %s, %s", csvOut, radarOut, barsOut)

	if *dbPath != "" {
		db, err := resultsdb.Open(*dbPath)
		if err != nil {
			log.Fatalf("open results db: %v", err)
		}
		runID, err := db.SaveRun(params, ranked, matrix)
		db.Close()
		if err != nil {
			log.Fatalf("record run: %v", err)
		}
		monitoring.Logf("recorded run %s in %s", runID, *dbPath)
	}
}

func printRanking(st *scoring.ScoreTable) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tSQUAD\tAGE\tMIN\tSCORE")
	for i, e := range st.Entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%.0f\t%.3f\n", i+1, e.Player, e.Squad, e.Age, e.Minutes, e.Score)
	}
	w.Flush()
}

func writeRankingCSV(st *scoring.ScoreTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"rank", "player", "squad", "age", "minutes", "score"}); err != nil {
		return err
	}
	for i, e := range st.Entries {
		rec := []string{
			strconv.Itoa(i + 1),
			e.Player,
			e.Squad,
			strconv.FormatFloat(e.Age, 'f', 0, 64),
			strconv.FormatFloat(e.Minutes, 'f', 0, 64),
			strconv.FormatFloat(e.Score, 'f', 3, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
