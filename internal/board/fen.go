// FILE: internal/board/fen.go
package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlacementParse reports a malformed FEN piece-placement field
var ErrPlacementParse = errors.New("invalid board placement")

// ParsePlacement reads a FEN piece-placement field. A full FEN record is accepted,
// fields after the first are ignored since side to move is not tracked here.
func ParsePlacement(fen string) (Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return Board{}, fmt.Errorf("%w: empty", ErrPlacementParse)
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: expected 8 ranks, got %d", ErrPlacementParse, len(ranks))
	}

	b := Empty()
	for i, rank := range ranks {
		r := 7 - i
		file := 0
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			sq, ok := NewSquare(file, r)
			if !ok {
				return Board{}, fmt.Errorf("%w: too many pieces in rank %d", ErrPlacementParse, r+1)
			}
			p, ok := pieceFromSymbol(ch)
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown piece %q", ErrPlacementParse, ch)
			}
			b.squares[sq.Offset()] = p
			file++
		}
		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %d has %d files", ErrPlacementParse, r+1, file)
		}
	}

	return b, nil
}

// Placement encodes the board as a FEN piece-placement field
func (b Board) Placement() string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq, _ := NewSquare(f, r)
			p := b.Get(sq)
			if p.IsBlank() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
