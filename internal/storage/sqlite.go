// Package storage provides SQLite-based run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The high score table lives in the ledger package; this is the longer
// record of every finished run.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID        int64
	Mode      string
	Initials  string // "---" when the score did not reach the ledger
	Score     int
	Wave      int
	Ticks     int
	CreatedAt time.Time
}

// Stats aggregates the runs of one mode.
type Stats struct {
	Mode       string
	Runs       int
	HighScore  int
	AvgScore   float64
	BestWave   int
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			initials TEXT NOT NULL DEFAULT '---',
			score INTEGER NOT NULL,
			wave INTEGER NOT NULL DEFAULT 1,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Initials == "" {
		r.Initials = "---"
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (mode, initials, score, wave, ticks) VALUES (?, ?, ?, ?, ?)",
		r.Mode, r.Initials, r.Score, r.Wave, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs of a mode, highest score first. Equal
// scores keep insertion order.
func (s *Store) TopRuns(mode string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, initials, score, wave, ticks, created_at
		 FROM runs
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Mode, &r.Initials, &r.Score, &r.Wave, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats returns aggregated statistics for a mode. A mode without runs
// yields zero values.
func (s *Store) Stats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(wave), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE mode = ?`,
		mode,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.BestWave, &stats.TotalTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mode = ? ORDER BY id DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

// ClearRuns deletes the history of a mode.
func (s *Store) ClearRuns(mode string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE mode = ?", mode); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
