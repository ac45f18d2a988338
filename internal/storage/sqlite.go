// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished game run.
type RunRecord struct {
	ID        int64
	Score     int
	Level     int // Highest level reached during the run
	Duration  int // Run length in seconds
	CreatedAt time.Time
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(score, level, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, level, duration_secs) VALUES (?, ?, ?)",
		score, level, durationSecs,
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

// TopRuns retrieves the best N runs, ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, level, duration_secs, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// scanRun reads one row. The datetime column comes back as either
// time.Time or a string depending on how the row was written.
func scanRun(rows *sql.Rows) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Score, &r.Level, &r.Duration, &createdAt); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}

// HighScore returns the best score across all recorded runs.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over all recorded runs.
type RunStats struct {
	RunCount   int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics across all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0), COALESCE(AVG(score), 0)
		 FROM runs`,
	).Scan(&stats.RunCount, &stats.HighScore, &stats.BestLevel, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}
