// Package storage persists best-run records (levels cleared per run) in
// SQLite. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished run: how many levels were cleared before
// the run ended.
type RunEntry struct {
	ID        int64
	GameID    string
	Levels    int
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
			game_id TEXT NOT NULL,
			levels INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, levels DESC);
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

// SaveRun records a finished run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, levels int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, levels) VALUES (?, ?)",
		gameID, levels,
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

// TopRuns retrieves the top N runs for the given game, ordered by levels
// cleared descending.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, game_id, levels, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY levels DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// AllRuns retrieves every recorded run for the given game (no limit).
func (s *Store) AllRuns(gameID string) ([]RunEntry, error) {
	return s.queryRuns(
		`SELECT id, game_id, levels, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY levels DESC`,
		gameID,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Levels, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRun returns the most levels cleared in a single run for the given
// game. Returns 0 if no runs exist.
func (s *Store) BestRun(gameID string) (int, error) {
	var levels sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(levels) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&levels)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !levels.Valid {
		return 0, nil
	}

	return int(levels.Int64), nil
}

// ClearRuns deletes all recorded runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats contains aggregated run statistics for a game.
type GameStats struct {
	GameID      string
	RunsCount   int
	BestRun     int
	AvgLevels   float64
	TotalLevels int64
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated run statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(levels), 0), COALESCE(AVG(levels), 0), COALESCE(SUM(levels), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.BestRun, &stats.AvgLevels, &stats.TotalLevels)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp converts a scanned created_at value to time.Time.
// The driver returns either a time.Time or a string depending on how the
// row was written.
func parseTimestamp(v any) time.Time {
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
