// Package results persists seed sweep outcomes in a SQLite database.
package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run is the outcome of one simulation in a sweep.
type Run struct {
	Seed       int64
	Width      int
	Height     int
	Steps      int
	Population int
	Elapsed    time.Duration
}

// Store writes runs to a SQLite database.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS runs (
	seed       INTEGER NOT NULL,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	steps      INTEGER NOT NULL,
	population INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	PRIMARY KEY (seed, width, height, steps)
)`

// Open opens or creates the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save records runs in one transaction, replacing earlier results for the
// same seed and dimensions.
func (s *Store) Save(ctx context.Context, runs []Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO runs
		(seed, width, height, steps, population, elapsed_ns) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, r := range runs {
		if _, err := stmt.ExecContext(ctx, r.Seed, r.Width, r.Height, r.Steps, r.Population, r.Elapsed.Nanoseconds()); err != nil {
			tx.Rollback()
			return fmt.Errorf("save seed %d: %w", r.Seed, err)
		}
	}
	return tx.Commit()
}

// Top returns the n runs with the largest final population for the given
// dimensions, ties broken by seed.
func (s *Store) Top(ctx context.Context, width, height, steps, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT seed, population, elapsed_ns FROM runs
		WHERE width = ? AND height = ? AND steps = ?
		ORDER BY population DESC, seed ASC LIMIT ?`, width, height, steps, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r := Run{Width: width, Height: height, Steps: steps}
		var ns int64
		if err := rows.Scan(&r.Seed, &r.Population, &ns); err != nil {
			return nil, err
		}
		r.Elapsed = time.Duration(ns)
		out = append(out, r)
	}
	return out, rows.Err()
}
