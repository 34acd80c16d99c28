// FILE: internal/board/square.go
package board

import (
	"errors"
	"fmt"
)

// ErrSquareParse reports a malformed square such as "i1", "a9" or "e"
var ErrSquareParse = errors.New("invalid square")

// Square is a board coordinate, File and Rank are both in [0,7]
type Square struct {
	File int
	Rank int
}

// ParseSquare reads the two character form, file letter then rank digit
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q must be two characters", ErrSquareParse, s)
	}
	if s[0] < 'a' || s[0] > 'h' {
		return Square{}, fmt.Errorf("%w: file %q not in a-h", ErrSquareParse, s[0])
	}
	if s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: rank %q not in 1-8", ErrSquareParse, s[1])
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// NewSquare builds a square from 0-indexed coordinates
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, false
	}
	return Square{File: file, Rank: rank}, true
}

// Offset is the index of the square in the board array
func (s Square) Offset() int {
	return s.Rank*8 + s.File
}

func (s Square) String() string {
	return fmt.Sprintf("%c%c", 'a'+s.File, '1'+s.Rank)
}
