// FILE: internal/board/piece.go
package board

import (
	"errors"
	"fmt"

	"chesscheck/internal/core"
)

// ErrPieceParse reports a designator outside N, B, R, Q, K
var ErrPieceParse = errors.New("invalid piece designator")

type Kind int

const (
	KindBlank Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

func (k Kind) String() string {
	switch k {
	case KindPawn:
		return "pawn"
	case KindKnight:
		return "knight"
	case KindBishop:
		return "bishop"
	case KindRook:
		return "rook"
	case KindQueen:
		return "queen"
	case KindKing:
		return "king"
	default:
		return "blank"
	}
}

// Piece occupies a square. Color of a blank piece carries no meaning.
type Piece struct {
	Kind  Kind
	Color core.Color
}

var (
	Blank = Piece{Kind: KindBlank, Color: core.ColorWhite}

	WhitePawn   = Piece{Kind: KindPawn, Color: core.ColorWhite}
	WhiteKnight = Piece{Kind: KindKnight, Color: core.ColorWhite}
	WhiteBishop = Piece{Kind: KindBishop, Color: core.ColorWhite}
	WhiteRook   = Piece{Kind: KindRook, Color: core.ColorWhite}
	WhiteQueen  = Piece{Kind: KindQueen, Color: core.ColorWhite}
	WhiteKing   = Piece{Kind: KindKing, Color: core.ColorWhite}

	BlackPawn   = Piece{Kind: KindPawn, Color: core.ColorBlack}
	BlackKnight = Piece{Kind: KindKnight, Color: core.ColorBlack}
	BlackBishop = Piece{Kind: KindBishop, Color: core.ColorBlack}
	BlackRook   = Piece{Kind: KindRook, Color: core.ColorBlack}
	BlackQueen  = Piece{Kind: KindQueen, Color: core.ColorBlack}
	BlackKing   = Piece{Kind: KindKing, Color: core.ColorBlack}
)

var designators = map[byte]Kind{
	'N': KindKnight,
	'B': KindBishop,
	'R': KindRook,
	'Q': KindQueen,
	'K': KindKing,
}

// ParsePiece maps a designator to a piece of the given color, empty means pawn
func ParsePiece(s string, color core.Color) (Piece, error) {
	if s == "" {
		return Piece{Kind: KindPawn, Color: color}, nil
	}
	if len(s) != 1 {
		return Piece{}, fmt.Errorf("%w: %q", ErrPieceParse, s)
	}
	kind, ok := designators[s[0]]
	if !ok {
		return Piece{}, fmt.Errorf("%w: %q", ErrPieceParse, s)
	}
	return Piece{Kind: kind, Color: color}, nil
}

func (p Piece) IsBlank() bool {
	return p.Kind == KindBlank
}

// Equal compares kind and color, all blanks are equal
func (p Piece) Equal(o Piece) bool {
	if p.IsBlank() || o.IsBlank() {
		return p.IsBlank() && o.IsBlank()
	}
	return p == o
}

// Designator is the move-notation letter, empty for pawns and blanks
func (p Piece) Designator() string {
	switch p.Kind {
	case KindKnight:
		return "N"
	case KindBishop:
		return "B"
	case KindRook:
		return "R"
	case KindQueen:
		return "Q"
	case KindKing:
		return "K"
	default:
		return ""
	}
}

// Symbol is the board letter, uppercase for white and lowercase for black
func (p Piece) Symbol() byte {
	var c byte
	switch p.Kind {
	case KindPawn:
		c = 'P'
	case KindKnight:
		c = 'N'
	case KindBishop:
		c = 'B'
	case KindRook:
		c = 'R'
	case KindQueen:
		c = 'Q'
	case KindKing:
		c = 'K'
	default:
		return '_'
	}
	if p.Color == core.ColorBlack {
		c += 'a' - 'A'
	}
	return c
}

func (p Piece) String() string {
	return string(p.Symbol())
}

// pieceFromSymbol is the inverse of Symbol for occupied squares
func pieceFromSymbol(c byte) (Piece, bool) {
	color := core.ColorWhite
	if c >= 'a' && c <= 'z' {
		color = core.ColorBlack
		c -= 'a' - 'A'
	}
	if c == 'P' {
		return Piece{Kind: KindPawn, Color: color}, true
	}
	kind, ok := designators[c]
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: color}, true
}
