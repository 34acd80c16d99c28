// FILE: internal/storage/records.go
package storage

import (
	"database/sql"
	"fmt"
)

// RecordNewGame asynchronously records a new game
func (s *Store) RecordNewGame(record GameRecord) error {
	return s.enqueue("game record", func(tx *sql.Tx) error {
		query := `INSERT INTO games (
			game_id, owner_id, initial_board, start_time_utc
		) VALUES (?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.OwnerID, record.InitialBoard, record.StartTimeUTC,
		)
		return err
	})
}

// RecordMove asynchronously records a move
func (s *Store) RecordMove(record MoveRecord) error {
	return s.enqueue("move record", func(tx *sql.Tx) error {
		query := `INSERT INTO moves (
			game_id, move_number, notation, board_after, player_color, move_time_utc
		) VALUES (?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.MoveNumber, record.Notation,
			record.BoardAfter, record.PlayerColor, record.MoveTimeUTC,
		)
		return err
	})
}

// DeleteUndoneMoves asynchronously deletes moves after undo
func (s *Store) DeleteUndoneMoves(gameID string, afterMoveNumber int) error {
	return s.enqueue("undo operation", func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM moves WHERE game_id = ? AND move_number > ?`, gameID, afterMoveNumber)
		return err
	})
}

// DeleteGame asynchronously removes a game and its moves
func (s *Store) DeleteGame(gameID string) error {
	return s.enqueue("game deletion", func(tx *sql.Tx) error {
		// foreign_keys is per connection, cascade is not guaranteed on pooled ones
		if _, err := tx.Exec(`DELETE FROM moves WHERE game_id = ?`, gameID); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM games WHERE game_id = ?`, gameID)
		return err
	})
}

// RecordCheck asynchronously records the outcome of a game validation
func (s *Store) RecordCheck(record CheckRecord) error {
	return s.enqueue("check record", func(tx *sql.Tx) error {
		query := `INSERT INTO checks (
			check_id, valid, applied, total, failed_move, reason, final_board, checked_at_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.CheckID, record.Valid, record.Applied, record.Total,
			record.FailedMove, record.Reason, record.FinalBoard, record.CheckedAtUTC,
		)
		return err
	})
}

// QueryGames retrieves games with optional filtering, "*" or "" matches all
func (s *Store) QueryGames(gameID, ownerID string) ([]GameRecord, error) {
	query := `SELECT game_id, owner_id, initial_board, start_time_utc FROM games WHERE 1=1`

	var args []interface{}

	if gameID != "" && gameID != "*" {
		query += " AND game_id = ?"
		args = append(args, gameID)
	}

	if ownerID != "" && ownerID != "*" {
		query += " AND owner_id = ?"
		args = append(args, ownerID)
	}

	query += " ORDER BY start_time_utc DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.GameID, &g.OwnerID, &g.InitialBoard, &g.StartTimeUTC); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return games, nil
}

// QueryMoves retrieves the moves of a game in play order
func (s *Store) QueryMoves(gameID string) ([]MoveRecord, error) {
	rows, err := s.db.Query(`SELECT
		move_id, game_id, move_number, notation, board_after, player_color, move_time_utc
	FROM moves WHERE game_id = ? ORDER BY move_number ASC`, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(
			&m.MoveID, &m.GameID, &m.MoveNumber, &m.Notation,
			&m.BoardAfter, &m.PlayerColor, &m.MoveTimeUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return moves, nil
}

// QueryChecks retrieves recorded checks, optionally only the failed ones
func (s *Store) QueryChecks(failedOnly bool, limit int) ([]CheckRecord, error) {
	query := `SELECT
		check_id, valid, applied, total, failed_move, reason, final_board, checked_at_utc
	FROM checks`
	var args []interface{}

	if failedOnly {
		query += " WHERE valid = 0"
	}
	query += " ORDER BY checked_at_utc DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var checks []CheckRecord
	for rows.Next() {
		var c CheckRecord
		err := rows.Scan(
			&c.CheckID, &c.Valid, &c.Applied, &c.Total,
			&c.FailedMove, &c.Reason, &c.FinalBoard, &c.CheckedAtUTC,
		)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		checks = append(checks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return checks, nil
}
