// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of split runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/spread-splitter/pkg/types"
)

const defaultLimit = 20

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path and creates the schema if it
// does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			source_pages INTEGER NOT NULL,
			split_pages INTEGER NOT NULL,
			skipped_pages INTEGER NOT NULL,
			output_pages INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends rec to the ledger and returns its ID.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input_path, output_path, source_pages, split_pages,
			skipped_pages, output_pages, started_at, duration_ns, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InputPath, rec.OutputPath, rec.SourcePages, rec.SplitPages,
		rec.SkippedPages, rec.OutputPages, rec.StartedAt.UTC().Format(time.RFC3339Nano),
		int64(rec.Duration), string(rec.Status), rec.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit runs, newest first. A limit of 0 or less uses
// the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, output_path, source_pages, split_pages,
			skipped_pages, output_pages, started_at, duration_ns, status, COALESCE(error, '')
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var (
			r         types.RunRecord
			startedAt string
			duration  int64
			status    string
		)
		if err := rows.Scan(&r.ID, &r.InputPath, &r.OutputPath, &r.SourcePages, &r.SplitPages,
			&r.SkippedPages, &r.OutputPages, &startedAt, &duration, &status, &r.Error); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at for run %d: %w", r.ID, err)
		}
		r.Duration = time.Duration(duration)
		r.Status = types.RunStatus(status)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// WriteText prints runs as a table.
func WriteText(w io.Writer, runs []types.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	fmt.Fprintf(w, "%-4s  %-20s  %-9s  %-6s  %-7s  %-6s  %s\n",
		"ID", "Started", "Status", "Pages", "Skipped", "Output", "Input")
	for _, r := range runs {
		fmt.Fprintf(w, "%-4d  %-20s  %-9s  %-6d  %-7d  %-6d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Status,
			r.SourcePages, r.SkippedPages, r.OutputPages, r.InputPath)
	}
}

// WriteYAML encodes runs as a YAML list.
func WriteYAML(w io.Writer, runs []types.RunRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(runs); err != nil {
		return fmt.Errorf("encoding runs: %w", err)
	}
	return enc.Close()
}
