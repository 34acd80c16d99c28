package board

import (
	"strings"
	"testing"
)

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func TestInitialBoard(t *testing.T) {
	b := Initial()
	cases := map[string]Piece{
		"a1": WhiteRook, "b1": WhiteKnight, "c1": WhiteBishop, "d1": WhiteQueen,
		"e1": WhiteKing, "h1": WhiteRook, "e2": WhitePawn, "e4": Blank,
		"e7": BlackPawn, "d8": BlackQueen, "e8": BlackKing, "g8": BlackKnight,
	}
	for s, want := range cases {
		if got := b.Get(mustSquare(t, s)); !got.Equal(want) {
			t.Errorf("Initial().Get(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestSetDoesNotAlias(t *testing.T) {
	orig := Initial()
	for off := 0; off < Size; off++ {
		sq, _ := NewSquare(off%8, off/8)
		for _, p := range []Piece{Blank, WhiteQueen, BlackKnight} {
			next := orig.Set(sq, p)
			if got := next.Get(sq); !got.Equal(p) {
				t.Fatalf("Set(%s, %v).Get = %v", sq, p, got)
			}
		}
	}
	if !orig.Equal(Initial()) {
		t.Fatal("receiver modified by Set")
	}
}

func TestRender(t *testing.T) {
	want := strings.Join([]string{
		"8|r|n|b|q|k|b|n|r|",
		"7|p|p|p|p|p|p|p|p|",
		"6|_|_|_|_|_|_|_|_|",
		"5|_|_|_|_|_|_|_|_|",
		"4|_|_|_|_|_|_|_|_|",
		"3|_|_|_|_|_|_|_|_|",
		"2|P|P|P|P|P|P|P|P|",
		"1|R|N|B|Q|K|B|N|R|",
		"-|a b c d e f g h",
	}, "\n")
	if got := Initial().String(); got != want {
		t.Errorf("Initial().String() =\n%s\nwant\n%s", got, want)
	}

	classic := Initial().Render(ClassicRenderOptions)
	lines := strings.Split(classic, "\n")
	if lines[3] != "5| | | | | | | | |" {
		t.Errorf("classic rank 5 = %q", lines[3])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("classic trailer = %q", lines[8])
	}
}
