package game

import (
	"errors"
	"testing"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
	"chesscheck/internal/move"
)

func TestSessionPlay(t *testing.T) {
	s := NewSession(board.Initial(), "")

	for _, token := range []string{"e2-e4", "e7-e5", "Ng1-f3"} {
		if _, err := s.Play(token); err != nil {
			t.Fatalf("Play(%q): %v", token, err)
		}
	}
	if s.NextTurn() != core.ColorBlack {
		t.Errorf("NextTurn() = %v, want black", s.NextTurn())
	}

	if _, err := s.Play("Ng1-f3"); !errors.Is(err, move.ErrIllegalMove) {
		t.Errorf("replayed white move error = %v, want ErrIllegalMove", err)
	}
	if _, err := s.Play("Ng8"); !errors.Is(err, move.ErrMoveFormat) {
		t.Errorf("truncated move error = %v, want ErrMoveFormat", err)
	}
	if got := len(s.Moves()); got != 3 {
		t.Fatalf("len(Moves()) = %d after rejected moves, want 3", got)
	}

	b, ok := s.Game().Apply(s.InitialBoard())
	if !ok || !b.Equal(s.CurrentBoard()) {
		t.Error("replaying the session game does not reproduce the current board")
	}
}

func TestSessionUndo(t *testing.T) {
	s := NewSession(board.Initial(), "owner")
	s.Play("d2-d4")
	s.Play("d7-d5")

	if err := s.UndoMoves(3); err == nil {
		t.Error("undo past the start accepted")
	}
	if err := s.UndoMoves(0); err == nil {
		t.Error("undo of zero moves accepted")
	}
	if err := s.UndoMoves(2); err != nil {
		t.Fatal(err)
	}
	if !s.CurrentBoard().Equal(board.Initial()) || s.NextTurn() != core.ColorWhite {
		t.Error("undo did not restore the initial position")
	}
	if s.Owner() != "owner" {
		t.Errorf("Owner() = %q", s.Owner())
	}
}
