// FILE: internal/board/board.go
package board

const (
	Size = 64

	StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

// Board is a value, every update returns a new Board and leaves the receiver intact
type Board struct {
	squares [Size]Piece
}

var initial = Board{
	squares: [Size]Piece{
		WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook,
		WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn,
		Blank, Blank, Blank, Blank, Blank, Blank, Blank, Blank,
		Blank, Blank, Blank, Blank, Blank, Blank, Blank, Blank,
		Blank, Blank, Blank, Blank, Blank, Blank, Blank, Blank,
		Blank, Blank, Blank, Blank, Blank, Blank, Blank, Blank,
		BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn,
		BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook,
	},
}

// Initial returns the starting arrangement
func Initial() Board {
	return initial
}

// Empty returns a board with every square blank
func Empty() Board {
	var b Board
	for i := range b.squares {
		b.squares[i] = Blank
	}
	return b
}

func (b Board) Get(sq Square) Piece {
	return b.squares[sq.Offset()]
}

// Set returns a copy of b with p placed on sq
func (b Board) Set(sq Square, p Piece) Board {
	b.squares[sq.Offset()] = p
	return b
}

// Equal compares boards cell by cell, ignoring the color carried by blanks
func (b Board) Equal(o Board) bool {
	for i := range b.squares {
		if !b.squares[i].Equal(o.squares[i]) {
			return false
		}
	}
	return true
}
