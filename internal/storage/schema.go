// FILE: internal/storage/schema.go
package storage

import "time"

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID       string    `db:"game_id"`
	OwnerID      string    `db:"owner_id"` // empty for anonymous games
	InitialBoard string    `db:"initial_board"`
	StartTimeUTC time.Time `db:"start_time_utc"`
}

// MoveRecord represents a row in the moves table
type MoveRecord struct {
	MoveID      int64     `db:"move_id"`
	GameID      string    `db:"game_id"`
	MoveNumber  int       `db:"move_number"`
	Notation    string    `db:"notation"`
	BoardAfter  string    `db:"board_after"`
	PlayerColor string    `db:"player_color"` // "w" or "b"
	MoveTimeUTC time.Time `db:"move_time_utc"`
}

// CheckRecord represents a row in the checks table, one per validated game text
type CheckRecord struct {
	CheckID      string    `db:"check_id"`
	Valid        bool      `db:"valid"`
	Applied      int       `db:"applied"`
	Total        int       `db:"total"`
	FailedMove   string    `db:"failed_move"`
	Reason       string    `db:"reason"`
	FinalBoard   string    `db:"final_board"`
	CheckedAtUTC time.Time `db:"checked_at_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL DEFAULT '',
	initial_board TEXT NOT NULL,
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS moves (
	move_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	move_number INTEGER NOT NULL,
	notation TEXT NOT NULL,
	board_after TEXT NOT NULL,
	player_color TEXT NOT NULL CHECK(player_color IN ('w', 'b')),
	move_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, move_number)
);

CREATE TABLE IF NOT EXISTS checks (
	check_id TEXT PRIMARY KEY,
	valid INTEGER NOT NULL,
	applied INTEGER NOT NULL,
	total INTEGER NOT NULL,
	failed_move TEXT NOT NULL DEFAULT '',
	reason TEXT NOT NULL DEFAULT '',
	final_board TEXT NOT NULL,
	checked_at_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
CREATE INDEX IF NOT EXISTS idx_games_owner ON games(owner_id);
CREATE INDEX IF NOT EXISTS idx_checks_valid ON checks(valid);
`
