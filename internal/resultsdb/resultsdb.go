// Package resultsdb writes one analysis run's outputs into a sqlite file
// so downstream tooling can query them without re-parsing the CSV. Each run
// is stamped with its own id; nothing is ever read back or merged across
// runs by this program.
package resultsdb

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fieldlens/midfield.report/internal/comparison"
	"github.com/fieldlens/midfield.report/internal/config"
	"github.com/fieldlens/midfield.report/internal/scoring"
)

type DB struct {
	*sql.DB
}

// Open opens (or creates) the results database and ensures the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			params TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS scores (
			run_id TEXT,
			rank INTEGER,
			player TEXT,
			squad TEXT,
			age DOUBLE,
			minutes DOUBLE,
			score DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
		CREATE TABLE IF NOT EXISTS bands (
			run_id TEXT,
			metric TEXT,
			upper_bound DOUBLE,
			lower_bound DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("resultsdb: ensure schema: %w", err)
	}

	return &DB{db}, nil
}

// SaveRun records the parameters, ranked scores and comparison bands of one
// run inside a single transaction and returns the generated run id.
func (db *DB) SaveRun(params config.Params, st *scoring.ScoreTable, m *comparison.Matrix) (string, error) {
	runID := uuid.NewString()

	paramsJSON, err := json.Marshal(paramsDoc(params))
	if err != nil {
		return "", fmt.Errorf("resultsdb: encode params: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO runs (run_id, params) VALUES (?, ?)", runID, string(paramsJSON)); err != nil {
		return "", fmt.Errorf("resultsdb: insert run: %w", err)
	}
	for i, e := range st.Entries {
		_, err := tx.Exec(
			"INSERT INTO scores (run_id, rank, player, squad, age, minutes, score) VALUES (?, ?, ?, ?, ?, ?, ?)",
			runID, i+1, e.Player, e.Squad, e.Age, e.Minutes, e.Score)
		if err != nil {
			return "", fmt.Errorf("resultsdb: insert score for %s: %w", e.Player, err)
		}
	}
	if m != nil && len(m.Rows) >= 2 {
		for i, metric := range m.Metrics {
			_, err := tx.Exec(
				"INSERT INTO bands (run_id, metric, upper_bound, lower_bound) VALUES (?, ?, ?, ?)",
				runID, metric, m.Rows[0][i], m.Rows[1][i])
			if err != nil {
				return "", fmt.Errorf("resultsdb: insert band for %s: %w", metric, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// paramsDoc flattens Params for storage alongside the run.
func paramsDoc(p config.Params) map[string]interface{} {
	return map[string]interface{}{
		"max_age":         p.MaxAge,
		"min_minutes_pct": p.MinMinutesPct,
		"squad_matches":   p.SquadMatches,
		"top_n":           p.TopN,
		"compare_n":       p.CompareN,
		"position":        p.Position,
		"metrics":         p.Metrics,
		"weights":         p.Weights,
		"display_metrics": p.DisplayMetrics,
	}
}
