// FILE: internal/game/session.go
package game

import (
	"fmt"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
	"chesscheck/internal/move"
)

type Snapshot struct {
	Board        board.Board // Board state at this point
	PreviousMove string      // Move that created this position (empty for initial)
	Move         move.Move   // Parsed form of PreviousMove, nil for initial
	NextTurn     core.Color  // Side whose token is read next
}

// Session is a game played one token at a time, keeping every position for undo
type Session struct {
	snapshots []Snapshot
	owner     string
}

func NewSession(initial board.Board, owner string) *Session {
	return &Session{
		snapshots: []Snapshot{
			{
				Board:        initial,
				PreviousMove: "", // No move led to initial position
				NextTurn:     core.ColorWhite,
			},
		},
		owner: owner,
	}
}

func (s *Session) Owner() string {
	return s.owner
}

func (s *Session) CurrentSnapshot() Snapshot {
	return s.snapshots[len(s.snapshots)-1]
}

func (s *Session) CurrentBoard() board.Board {
	return s.CurrentSnapshot().Board
}

func (s *Session) InitialBoard() board.Board {
	return s.snapshots[0].Board
}

func (s *Session) NextTurn() core.Color {
	return s.CurrentSnapshot().NextTurn
}

// Play parses token for the side to move and applies it. An illegal move leaves
// the session unchanged.
func (s *Session) Play(token string) (move.Move, error) {
	current := s.CurrentSnapshot()

	m, err := move.Parse(token, current.NextTurn)
	if err != nil {
		return nil, err
	}
	if err := move.Check(m, current.Board); err != nil {
		return nil, err
	}

	next, _ := move.Apply(m, current.Board)
	s.snapshots = append(s.snapshots, Snapshot{
		Board:        next,
		PreviousMove: m.String(),
		Move:         m,
		NextTurn:     current.NextTurn.Flip(),
	})
	return m, nil
}

func (s *Session) UndoMoves(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(s.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	s.snapshots = s.snapshots[:len(s.snapshots)-count]
	return nil
}

func (s *Session) Moves() []string {
	moves := []string{}
	for i := 1; i < len(s.snapshots); i++ {
		moves = append(moves, s.snapshots[i].PreviousMove)
	}
	return moves
}

// Game returns the played moves as a Game value
func (s *Session) Game() *Game {
	g := &Game{}
	for i := 1; i < len(s.snapshots); i++ {
		g.moves = append(g.moves, s.snapshots[i].Move)
	}
	return g
}
