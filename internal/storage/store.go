// Package storage persists simulation runs: a SQLite index of run
// parameters and metrics, plus one CSV profile file per run.
package storage

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"diffsim/internal/diffusion"
)

type Store struct {
	baseDir string
	db      *sql.DB
}

// Open creates the data directory if needed and opens the run index,
// migrating the schema on first use.
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(baseDir, "runs.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open run index: %w", err)
	}

	s := &Store{baseDir: baseDir, db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate run index: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		diffusivity REAL NOT NULL,
		domain_length REAL NOT NULL,
		spacing REAL NOT NULL,
		c_left REAL NOT NULL,
		c_right REAL NOT NULL,
		dt REAL NOT NULL,
		steps INTEGER NOT NULL,
		metrics JSON NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Diffusivity float64            `json:"diffusivity"`
	Length      float64            `json:"domain_length"`
	Spacing     float64            `json:"spacing"`
	CLeft       float64            `json:"c_left"`
	CRight      float64            `json:"c_right"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save indexes the run and writes its grid with the initial and final
// profiles to <id>/profile.csv under the data directory.
func (s *Store) Save(ctx context.Context, p diffusion.Params, result *diffusion.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())

	metrics, err := json.Marshal(result.Metrics)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, diffusivity, domain_length, spacing, c_left, c_right, dt, steps, metrics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC(), p.Diffusivity, p.Length, p.Spacing,
		p.CLeft, p.CRight, result.Dt, result.StepsTaken, string(metrics),
	)
	if err != nil {
		return "", fmt.Errorf("failed to index run: %w", err)
	}

	if err := s.writeProfile(runID, result); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeProfile(runID string, result *diffusion.Result) error {
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(runDir, "profile.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "c0", "c"}); err != nil {
		return err
	}

	for i := range result.Grid {
		row := []string{
			strconv.FormatFloat(result.Grid[i], 'f', 6, 64),
			strconv.FormatFloat(result.Initial[i], 'f', 6, 64),
			strconv.FormatFloat(result.Final[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]RunMetadata, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, diffusivity, domain_length, spacing, c_left, c_right, dt, steps, metrics
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		meta, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *meta)
	}

	return runs, rows.Err()
}

func (s *Store) Load(ctx context.Context, runID string) (*RunMetadata, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, diffusivity, domain_length, spacing, c_left, c_right, dt, steps, metrics
		FROM runs WHERE id = ?`, runID)
	return scanRun(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*RunMetadata, error) {
	var (
		meta    RunMetadata
		metrics []byte
	)
	if err := row.Scan(&meta.ID, &meta.Timestamp, &meta.Diffusivity, &meta.Length,
		&meta.Spacing, &meta.CLeft, &meta.CRight, &meta.Dt, &meta.Steps, &metrics); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metrics, &meta.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode metrics: %w", err)
	}
	return &meta, nil
}

// LoadProfile reads a run's grid and its initial and final fields back from
// its profile file.
func (s *Store) LoadProfile(runID string) (diffusion.Grid, diffusion.Field, diffusion.Field, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return diffusion.Grid{}, diffusion.Field{}, diffusion.Field{}, nil
	}

	n := len(records) - 1
	x := make(diffusion.Grid, 0, n)
	initial := make(diffusion.Field, 0, n)
	final := make(diffusion.Field, 0, n)

	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		xi, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		c0, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		c, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		x = append(x, xi)
		initial = append(initial, c0)
		final = append(final, c)
	}

	return x, initial, final, nil
}
