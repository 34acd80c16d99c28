// FILE: internal/board/legality.go
package board

import "chesscheck/internal/core"

// CanMove checks the movement geometry of p from one square to another on b.
// Occupancy of the origin and destination is the caller's concern, except for
// pawns whose legal shapes depend on whether the destination is empty.
func CanMove(p Piece, b Board, from, to Square) bool {
	switch p.Kind {
	case KindPawn:
		return canPawnMove(p.Color, b, from, to)
	case KindKnight:
		df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
		return (df == 1 && dr == 2) || (df == 2 && dr == 1)
	case KindBishop:
		return canBishopMove(b, from, to)
	case KindRook:
		return canRookMove(b, from, to)
	case KindQueen:
		return canBishopMove(b, from, to) || canRookMove(b, from, to)
	case KindKing:
		return max(abs(to.File-from.File), abs(to.Rank-from.Rank)) == 1
	default:
		return false
	}
}

func canPawnMove(color core.Color, b Board, from, to Square) bool {
	dir, startRank := 1, 1
	if color == core.ColorBlack {
		dir, startRank = -1, 6
	}

	df := to.File - from.File
	dr := to.Rank - from.Rank

	switch {
	case df == 0 && dr == dir:
		return b.Get(to).IsBlank()
	case df == 0 && dr == 2*dir:
		if from.Rank != startRank {
			return false
		}
		mid := Square{File: from.File, Rank: from.Rank + dir}
		return b.Get(mid).IsBlank() && b.Get(to).IsBlank()
	case abs(df) == 1 && dr == dir:
		// Capture only, no en passant
		return !b.Get(to).IsBlank()
	default:
		return false
	}
}

func canBishopMove(b Board, from, to Square) bool {
	df, dr := abs(to.File-from.File), abs(to.Rank-from.Rank)
	if df != dr || df == 0 {
		return false
	}
	return pathClear(b, from, to)
}

func canRookMove(b Board, from, to Square) bool {
	df, dr := to.File-from.File, to.Rank-from.Rank
	if (df == 0) == (dr == 0) {
		return false
	}
	return pathClear(b, from, to)
}

// pathClear walks the squares strictly between from and to. The pair must lie on
// a shared rank, file or diagonal.
func pathClear(b Board, from, to Square) bool {
	df, dr := to.File-from.File, to.Rank-from.Rank
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return false
	}
	stepF, stepR := sign(df), sign(dr)

	f, r := from.File+stepF, from.Rank+stepR
	for f != to.File || r != to.Rank {
		if !b.squares[r*8+f].IsBlank() {
			return false
		}
		f += stepF
		r += stepR
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
