package board

import (
	"errors"
	"testing"

	"chesscheck/internal/core"
)

func TestParsePiece(t *testing.T) {
	cases := []struct {
		in    string
		color core.Color
		want  Piece
	}{
		{"", core.ColorWhite, WhitePawn},
		{"", core.ColorBlack, BlackPawn},
		{"N", core.ColorWhite, WhiteKnight},
		{"B", core.ColorBlack, BlackBishop},
		{"R", core.ColorWhite, WhiteRook},
		{"Q", core.ColorBlack, BlackQueen},
		{"K", core.ColorWhite, WhiteKing},
	}
	for _, tc := range cases {
		got, err := ParsePiece(tc.in, tc.color)
		if err != nil {
			t.Fatalf("ParsePiece(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParsePiece(%q, %v) = %v, want %v", tc.in, tc.color, got, tc.want)
		}
	}

	for _, in := range []string{"P", "X", "n", "NB"} {
		if _, err := ParsePiece(in, core.ColorWhite); !errors.Is(err, ErrPieceParse) {
			t.Errorf("ParsePiece(%q) error = %v, want ErrPieceParse", in, err)
		}
	}
}

func TestPieceSymbols(t *testing.T) {
	if WhiteQueen.String() != "Q" || BlackQueen.String() != "q" {
		t.Errorf("queen symbols = %s/%s", WhiteQueen, BlackQueen)
	}
	if Blank.String() != "_" {
		t.Errorf("blank symbol = %q", Blank.String())
	}
	if WhitePawn.Designator() != "" || BlackKnight.Designator() != "N" {
		t.Errorf("designators = %q/%q", WhitePawn.Designator(), BlackKnight.Designator())
	}
}

func TestBlankEquality(t *testing.T) {
	other := Piece{Kind: KindBlank, Color: core.ColorBlack}
	if !Blank.Equal(other) {
		t.Error("blanks with different colors should be equal")
	}
	if Blank.Equal(WhitePawn) || WhitePawn.Equal(Blank) {
		t.Error("blank equals pawn")
	}
	if WhitePawn.Equal(BlackPawn) {
		t.Error("pieces of different colors compare equal")
	}
}
