// Package storage provides SQLite-based persistence for the session journal.
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

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionEntry records one finished sketch run.
type SessionEntry struct {
	ID           int64
	SketchID     string
	Ticks        int
	Spawned      int
	PeakEntities int
	DurationSecs int
	CreatedAt    time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sketch_id TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			spawned INTEGER NOT NULL DEFAULT 0,
			peak_entities INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_sketch_id ON sessions(sketch_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(sketch_id, created_at DESC);
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

// SaveSession records a finished run in the journal.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(entry SessionEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (sketch_id, ticks, spawned, peak_entities, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.SketchID, entry.Ticks, entry.Spawned, entry.PeakEntities, entry.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions for the given sketch,
// newest first. An empty sketchID returns sessions across all sketches.
func (s *Store) RecentSessions(sketchID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, sketch_id, ticks, spawned, peak_entities, duration_secs, created_at
		 FROM sessions`
	args := []any{}
	if sketchID != "" {
		query += ` WHERE sketch_id = ?`
		args = append(args, sketchID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SketchID, &e.Ticks, &e.Spawned, &e.PeakEntities, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PeakEntities returns the highest peak entity count recorded for the
// given sketch. Returns 0 if no sessions exist.
func (s *Store) PeakEntities(sketchID string) (int, error) {
	var peak sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(peak_entities) FROM sessions WHERE sketch_id = ?",
		sketchID,
	).Scan(&peak)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query peak: %w", err)
	}

	if !peak.Valid {
		return 0, nil
	}

	return int(peak.Int64), nil
}

// ClearSessions deletes all journal entries for the given sketch.
func (s *Store) ClearSessions(sketchID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE sketch_id = ?", sketchID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// SketchStats contains aggregated statistics for one sketch.
type SketchStats struct {
	SketchID     string
	SessionCount int
	TotalTicks   int64
	TotalSpawned int64
	MaxPeak      int
	AvgDuration  float64
	LastRun      time.Time
}

// GetSketchStats retrieves aggregated statistics for a specific sketch.
func (s *Store) GetSketchStats(sketchID string) (*SketchStats, error) {
	stats := &SketchStats{SketchID: sketchID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(spawned), 0),
		        COALESCE(MAX(peak_entities), 0), COALESCE(AVG(duration_secs), 0)
		 FROM sessions WHERE sketch_id = ?`,
		sketchID,
	).Scan(&stats.SessionCount, &stats.TotalTicks, &stats.TotalSpawned, &stats.MaxPeak, &stats.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get sketch stats: %w", err)
	}

	// Get last run
	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE sketch_id = ? ORDER BY id DESC LIMIT 1`,
		sketchID,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		switch v := lastRun.(type) {
		case time.Time:
			stats.LastRun = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastRun = parsed
			}
		}
	}

	return stats, nil
}

// GetAllSketchStats retrieves statistics for every sketch with at least
// one recorded session.
func (s *Store) GetAllSketchStats() (map[string]*SketchStats, error) {
	rows, err := s.db.Query(
		`SELECT sketch_id, COUNT(*), SUM(ticks), SUM(spawned), MAX(peak_entities), AVG(duration_secs), MAX(created_at)
		 FROM sessions
		 GROUP BY sketch_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all sketch stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SketchStats)
	for rows.Next() {
		var st SketchStats
		var lastRun any
		if err := rows.Scan(&st.SketchID, &st.SessionCount, &st.TotalTicks, &st.TotalSpawned, &st.MaxPeak, &st.AvgDuration, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		switch v := lastRun.(type) {
		case time.Time:
			st.LastRun = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.LastRun = parsed
			}
		}

		stats[st.SketchID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
