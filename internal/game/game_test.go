package game

import (
	"errors"
	"testing"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
	"chesscheck/internal/move"
)

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	v, err := board.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustParse(t *testing.T, text string) *Game {
	t.Helper()
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return g
}

func TestParse(t *testing.T) {
	g := mustParse(t, "e2-e4 e7-e5\nNg1-f3 Nb8-c6\nBf1-b5\n\n")
	if g.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", g.Len())
	}
	moves := g.Moves()
	if moves[1].Mover() != board.BlackPawn {
		t.Errorf("second move mover = %v, want black pawn", moves[1].Mover())
	}
	if moves[4].Mover() != board.WhiteBishop {
		t.Errorf("fifth move mover = %v, want white bishop", moves[4].Mover())
	}
}

func TestParsePlainMoveWithDesignator(t *testing.T) {
	g := mustParse(t, "e2-Ne4")
	b, ok := g.Apply(board.Initial())
	if !ok {
		t.Fatal("e2-Ne4 rejected")
	}
	if got := b.Get(sq(t, "e4")); got != board.WhitePawn {
		t.Errorf("e4 = %v, want white pawn", got)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		text string
		also error
	}{
		{"e2-e4 e7-e5 Ng1-f3", nil},
		{"e2-e4 e7-e5\nNg1-f3 Nb8-c6 d2-d4", nil},
		{"e2-e4\ne7-e5", nil},
		{"e2-e4 e7-e5\nNg1-f9", move.ErrMoveFormat},
		{"e2e4", move.ErrMoveFormat},
		{"e2-e4 e7-e5\n\nNg1-f3 Nb8-c6", nil},
		{"\ne2-e4 e7-e5", nil},
		{"e2-e4 e7-e5\n   \nNg1-f3", nil},
	}
	for _, tc := range cases {
		g, err := Parse(tc.text)
		if !errors.Is(err, ErrGameFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrGameFormat", tc.text, err)
		}
		if g != nil {
			t.Errorf("Parse(%q) returned a partial game", tc.text)
		}
		if tc.also != nil && !errors.Is(err, tc.also) {
			t.Errorf("Parse(%q) error = %v, want also %v", tc.text, err, tc.also)
		}
	}
}

func TestApplyEmpty(t *testing.T) {
	g := mustParse(t, "")
	b, ok := g.Apply(board.Initial())
	if !ok {
		t.Fatal("empty game failed")
	}
	if !b.Equal(board.Initial()) {
		t.Error("empty game changed the board")
	}
}

func TestApplyOpening(t *testing.T) {
	g := mustParse(t, "e2-e4 e7-e5\nNg1-f3 Nb8-c6")
	b, ok := g.Apply(board.Initial())
	if !ok {
		t.Fatalf("opening rejected: %+v", g.Check(board.Initial()).Failed)
	}

	want := board.Initial().
		Set(sq(t, "e2"), board.Blank).Set(sq(t, "e4"), board.WhitePawn).
		Set(sq(t, "e7"), board.Blank).Set(sq(t, "e5"), board.BlackPawn).
		Set(sq(t, "g1"), board.Blank).Set(sq(t, "f3"), board.WhiteKnight).
		Set(sq(t, "b8"), board.Blank).Set(sq(t, "c6"), board.BlackKnight)
	if !b.Equal(want) {
		t.Errorf("final board =\n%s\nwant\n%s", b, want)
	}
	if got := b.Placement(); got != "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R" {
		t.Errorf("Placement() = %q", got)
	}
}

func TestApplyStopsAtFirstIllegalMove(t *testing.T) {
	g := mustParse(t, "Ke1-e3")
	b, ok := g.Apply(board.Initial())
	if ok {
		t.Fatal("Ke1-e3 accepted")
	}
	if !b.Equal(board.Initial()) {
		t.Error("failure board is not the initial board")
	}

	g = mustParse(t, "e2-e4 e7-e5\nBf1-a6 Ke8-e6\nd2-d4")
	r := g.Check(board.Initial())
	if r.OK {
		t.Fatal("game with illegal king move accepted")
	}
	if r.Applied != 3 || r.Failed == nil || r.Failed.Index != 3 {
		t.Fatalf("result = %+v, want failure at index 3", r)
	}
	if r.Failed.Color() != core.ColorBlack {
		t.Errorf("failed color = %v, want black", r.Failed.Color())
	}
	if !errors.Is(r.Failed.Reason, move.ErrIllegalMove) {
		t.Errorf("reason = %v, want ErrIllegalMove", r.Failed.Reason)
	}
	if !r.Board.Get(sq(t, "a6")).Equal(board.WhiteBishop) {
		t.Error("board does not include moves before the failure")
	}
}

func TestSlidingPieceUnblocked(t *testing.T) {
	if _, ok := mustParse(t, "Bc1-h6").Apply(board.Initial()); ok {
		t.Fatal("blocked bishop move accepted")
	}
	if _, ok := mustParse(t, "d2-d3 e7-e6\nBc1-h6").Apply(board.Initial()); !ok {
		t.Fatal("bishop move rejected after d-pawn advanced")
	}
}

func TestPawnDoubleStepOnlyOnce(t *testing.T) {
	if _, ok := mustParse(t, "e2-e4 e7-e5").Apply(board.Initial()); !ok {
		t.Fatal("double steps rejected")
	}
	if _, ok := mustParse(t, "a2-a4 h7-h6\na4-a6").Apply(board.Initial()); ok {
		t.Fatal("second double step accepted")
	}
}

func TestCaptureKindMismatch(t *testing.T) {
	text := "e2-e4 d7-d5\ne4xNd5"
	if _, ok := mustParse(t, text).Apply(board.Initial()); ok {
		t.Fatal("capture declared as knight accepted a pawn")
	}
	b, ok := mustParse(t, "e2-e4 d7-d5\ne4xd5").Apply(board.Initial())
	if !ok {
		t.Fatal("pawn capture rejected")
	}
	if !b.Get(sq(t, "d5")).Equal(board.WhitePawn) {
		t.Error("capturing pawn not on d5")
	}
}

func TestString(t *testing.T) {
	text := "e2-e4 e7-e5\nNg1-f3 Nb8-c6\nBf1-b5\n"
	if got := mustParse(t, text).String(); got != text {
		t.Errorf("String() = %q, want %q", got, text)
	}
}
