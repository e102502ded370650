// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only results are stored. A game in progress is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID          int64
	RunID       string // UUID assigned when the result is saved
	Variant     string
	Score       int
	HighestTile int
	Moves       int
	Size        int
	CreatedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			highest_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			size INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(variant, score DESC);
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

// SaveResult records a finished game. A run id is generated when r has none.
// Returns the stored result with its ID and run id filled in.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (run_id, variant, score, highest_tile, moves, size)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Variant, r.Score, r.HighestTile, r.Moves, r.Size,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return r, nil
}

const resultColumns = `id, run_id, variant, score, highest_tile, moves, size, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var r Result
	var createdAt any
	err := sc.Scan(&r.ID, &r.RunID, &r.Variant, &r.Score, &r.HighestTile, &r.Moves, &r.Size, &createdAt)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// TopScores retrieves the top N results for the given variant.
// Results are ordered by score descending, earlier games first on ties.
func (s *Store) TopScores(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collect(rows)
}

// AllResults retrieves all results for the given variant (no limit).
func (s *Store) AllResults(variant string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// ResultByRunID retrieves a result by its run id.
// Returns nil without error when no such run exists.
func (s *Store) ResultByRunID(runID string) (*Result, error) {
	r, err := scanResult(s.db.QueryRow(
		`SELECT `+resultColumns+` FROM results WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no results exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all results for the given variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	Variant     string
	GamesCount  int
	HighScore   int
	HighestTile int
	AvgScore    float64
	TotalScore  int64
	TotalMoves  int64
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetGameStats(variant string) (*GameStats, error) {
	stats := &GameStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(highest_tile), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), COALESCE(SUM(moves), 0)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.HighestTile,
		&stats.AvgScore, &stats.TotalScore, &stats.TotalMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE variant = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), MAX(highest_tile), AVG(score), SUM(score), SUM(moves), MAX(created_at)
		 FROM results
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.GamesCount, &st.HighScore, &st.HighestTile,
			&st.AvgScore, &st.TotalScore, &st.TotalMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Variant] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
