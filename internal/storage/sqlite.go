// Package storage persists finished rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hue-hunt/internal/config"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

const defaultLimit = 10

// Store is the round history. It is safe for concurrent use; SSH sessions
// share one Store.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID         int64
	GameID     string
	Player     string // SSH user name, empty for local play
	Difficulty string // preset name, empty for games without presets
	Stage      int    // final stage reached
	PlayedAt   time.Time
}

// RoundQuery selects rounds of one game. Empty Difficulty matches every
// preset; Player is only compared when ByPlayer is set, because local play
// is stored under the empty name.
type RoundQuery struct {
	GameID     string
	Difficulty string
	Player     string
	ByPlayer   bool
	Limit      int // defaults to 10
}

// where renders the query's filter and its arguments.
func (q RoundQuery) where() (string, []any) {
	clauses := []string{"game_id = ?"}
	args := []any{q.GameID}
	if q.Difficulty != "" {
		clauses = append(clauses, "difficulty = ?")
		args = append(args, q.Difficulty)
	}
	if q.ByPlayer {
		clauses = append(clauses, "player = ?")
		args = append(args, q.Player)
	}
	return strings.Join(clauses, " AND "), args
}

// Stats summarizes the rounds of one game.
type Stats struct {
	GameID     string
	Rounds     int
	BestStage  int
	AvgStage   float64
	LastPlayed time.Time
}

// Open creates or opens the database at dbPath, creating parent
// directories and the schema as needed. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT '',
			stage INTEGER NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(game_id, difficulty, stage DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(game_id, player);
	`)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
// ID and PlayedAt are assigned by the database.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: round has no game id")
	}

	result, err := s.db.Exec(
		"INSERT INTO rounds (game_id, player, difficulty, stage) VALUES (?, ?, ?, ?)",
		r.GameID, r.Player, r.Difficulty, r.Stage,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRounds lists matching rounds, highest stage first. Ties keep the
// order they were played in.
func (s *Store) BestRounds(q RoundQuery) ([]Round, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	where, args := q.where()
	rows, err := s.db.Query(
		`SELECT id, game_id, player, difficulty, stage, played_at
		 FROM rounds
		 WHERE `+where+`
		 ORDER BY stage DESC, id ASC
		 LIMIT ?`,
		append(args, limit)...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var playedAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Difficulty, &r.Stage, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.PlayedAt = parseTimestamp(playedAt)
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// parseTimestamp handles both driver-decoded times and raw SQLite strings.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestStage returns the highest stage reached in a game, 0 when nothing
// was recorded. An empty difficulty considers every preset.
func (s *Store) BestStage(gameID, difficulty string) (int, error) {
	where, args := RoundQuery{GameID: gameID, Difficulty: difficulty}.where()

	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(stage) FROM rounds WHERE "+where, args...).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query best stage: %w", err)
	}
	return int(best.Int64), nil
}

// ClearRounds deletes every round of a game.
func (s *Store) ClearRounds(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Stats summarizes one game across all players and presets.
func (s *Store) Stats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(stage), 0), COALESCE(AVG(stage), 0), MAX(played_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.BestStage, &stats.AvgStage, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// AllStats summarizes every game that has recorded rounds, keyed by game ID.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(stage), AVG(stage), MAX(played_at)
		 FROM rounds
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.Rounds, &st.BestStage, &st.AvgStage, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		all[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return all, nil
}
