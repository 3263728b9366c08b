// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index records scanned arXiv identifier occurrences in a SQLite
// database so that references found across many files can be queried
// later.
//
// Each version-less identifier is one row in papers, keeping the highest
// version, and the category and submission date of the latest stamp seen.
// Every occurrence is kept with its file, line and scan run.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-stamp/internal/identifier"
	"github.com/pdiddy/arxiv-stamp/pkg/types"
)

// DefaultPath is the database file used when the configuration names none.
const DefaultPath = "arxiv-stamp.db"

// ErrNotFound is returned by Get for identifiers that were never recorded.
var ErrNotFound = errors.New("identifier not in index")

// Store manages the index database.
type Store struct {
	db *sql.DB
}

// RunSummary counts what one scan run recorded.
type RunSummary struct {
	Recorded int
	Failed   int
}

// NewStore opens or creates the index database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
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
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			scheme TEXT NOT NULL,
			archive TEXT NOT NULL DEFAULT '',
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			number TEXT NOT NULL,
			latest_version INTEGER NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			submitted TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started TEXT NOT NULL,
			finished TEXT,
			recorded INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS occurrences (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			paper_id TEXT NOT NULL REFERENCES papers(id),
			path TEXT NOT NULL DEFAULT '',
			line INTEGER NOT NULL,
			raw TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_occurrences_paper_id ON occurrences(paper_id)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_category ON papers(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun registers a new scan run and returns its identifier.
func (s *Store) BeginRun(ctx context.Context) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// Record stores the parsed occurrences under runID in one transaction.
// Occurrences that failed to parse are counted but not stored.
func (s *Store) Record(ctx context.Context, runID string, occs []types.Occurrence) (RunSummary, error) {
	var summary RunSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	upsert, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, scheme, archive, year, month, number, latest_version, category, submitted)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			latest_version = MAX(papers.latest_version, excluded.latest_version),
			category = CASE WHEN excluded.category != '' THEN excluded.category ELSE papers.category END,
			submitted = CASE WHEN excluded.submitted != '' THEN excluded.submitted ELSE papers.submitted END`)
	if err != nil {
		return summary, fmt.Errorf("preparing paper upsert: %w", err)
	}
	defer upsert.Close()

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO occurrences (run_id, paper_id, path, line, raw) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing occurrence insert: %w", err)
	}
	defer insert.Close()

	for _, occ := range occs {
		if occ.Err != nil {
			summary.Failed++
			continue
		}
		id := occ.ID
		var cat, submitted string
		if occ.Stamp != nil {
			cat = occ.Stamp.Category
			submitted = occ.Stamp.Submitted.String()
		}
		if _, err := upsert.ExecContext(ctx,
			id.Bare(), string(id.Scheme), id.Archive, id.Year, id.Month, id.Number, id.Version, cat, submitted,
		); err != nil {
			return summary, fmt.Errorf("upserting %s: %w", id.Bare(), err)
		}
		if _, err := insert.ExecContext(ctx, runID, id.Bare(), occ.Path, occ.Line, occ.Raw); err != nil {
			return summary, fmt.Errorf("inserting occurrence of %s: %w", id.Bare(), err)
		}
		summary.Recorded++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing run %s: %w", runID, err)
	}
	return summary, nil
}

// FinishRun stamps the run's completion time and totals.
func (s *Store) FinishRun(ctx context.Context, runID string, summary RunSummary) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished = ?, recorded = ?, failed = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), summary.Recorded, summary.Failed, runID)
	if err != nil {
		return fmt.Errorf("updating run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("unknown run %s", runID)
	}
	return nil
}

// Get returns the aggregate record for an identifier given in any form
// ParseIdentifier accepts. The version in text is ignored.
func (s *Store) Get(ctx context.Context, text string) (*types.IndexedPaper, error) {
	id, err := identifier.Parse(text)
	if err != nil {
		return nil, err
	}

	var (
		p         types.IndexedPaper
		scheme    string
		submitted string
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT p.scheme, p.archive, p.year, p.month, p.number, p.latest_version, p.category, p.submitted,
		        (SELECT COUNT(*) FROM occurrences o WHERE o.paper_id = p.id)
		 FROM papers p WHERE p.id = ?`, id.Bare(),
	).Scan(&scheme, &p.ID.Archive, &p.ID.Year, &p.ID.Month, &p.ID.Number, &p.ID.Version,
		&p.Category, &submitted, &p.Occurrences)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id.Bare())
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", id.Bare(), err)
	}
	p.ID.Scheme = types.Scheme(scheme)

	if submitted != "" {
		var d types.Date
		if err := d.UnmarshalText([]byte(submitted)); err != nil {
			return nil, fmt.Errorf("decoding submitted date of %s: %w", id.Bare(), err)
		}
		p.Submitted = &d
	}
	return &p, nil
}

// Stats returns row counts for the index.
func (s *Store) Stats(ctx context.Context) (types.IndexStats, error) {
	var st types.IndexStats
	err := s.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM papers),
			(SELECT COUNT(*) FROM papers WHERE category != ''),
			(SELECT COUNT(*) FROM occurrences),
			(SELECT COUNT(*) FROM runs)`,
	).Scan(&st.Papers, &st.Stamped, &st.Occurrences, &st.Runs)
	if err != nil {
		return st, fmt.Errorf("querying stats: %w", err)
	}
	return st, nil
}
