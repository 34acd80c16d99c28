// FILE: internal/move/move.go
package move

import (
	"errors"
	"fmt"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
)

var (
	// ErrMoveFormat reports a token that does not follow the move grammar
	ErrMoveFormat = errors.New("invalid move format")
	// ErrIllegalMove reports a well-formed move that cannot be played on the board
	ErrIllegalMove = errors.New("illegal move")
)

// Move is either a PlainMove or a CaptureMove
type Move interface {
	fmt.Stringer
	// Mover is the piece expected on the origin square
	Mover() board.Piece
	Origin() board.Square
	Target() board.Square
	sealed()
}

// PlainMove relocates a piece onto an empty square, e.g. "Ng1-f3"
type PlainMove struct {
	Piece    board.Piece
	From, To board.Square
}

// CaptureMove takes the piece standing on To, e.g. "Bb5xNc6"
type CaptureMove struct {
	Piece    board.Piece
	From, To board.Square
	Taken    board.Piece
}

func (m PlainMove) Mover() board.Piece   { return m.Piece }
func (m PlainMove) Origin() board.Square { return m.From }
func (m PlainMove) Target() board.Square { return m.To }
func (PlainMove) sealed()                {}

func (m CaptureMove) Mover() board.Piece   { return m.Piece }
func (m CaptureMove) Origin() board.Square { return m.From }
func (m CaptureMove) Target() board.Square { return m.To }
func (CaptureMove) sealed()                {}

func (m PlainMove) String() string {
	return fmt.Sprintf("%s%s-%s", m.Piece.Designator(), m.From, m.To)
}

func (m CaptureMove) String() string {
	return fmt.Sprintf("%s%sx%s%s", m.Piece.Designator(), m.From, m.Taken.Designator(), m.To)
}

// Parse reads "[N|B|R|Q|K]<square>(-|x)[N|B|R|Q|K]<square>" for the given side.
// The captured piece belongs to the opponent.
func Parse(token string, color core.Color) (Move, error) {
	s := token

	piece, s, err := parseDesignator(token, s, color)
	if err != nil {
		return nil, err
	}

	if len(s) < 2 {
		return nil, fmt.Errorf("%w: %q is truncated", ErrMoveFormat, token)
	}
	from, err := board.ParseSquare(s[:2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMoveFormat, token, err)
	}
	s = s[2:]

	if len(s) == 0 {
		return nil, fmt.Errorf("%w: %q is truncated", ErrMoveFormat, token)
	}
	sep := s[0]
	if sep != '-' && sep != 'x' {
		return nil, fmt.Errorf("%w: %q: expected '-' or 'x' after %s, found %q", ErrMoveFormat, token, from, sep)
	}
	s = s[1:]

	// The captured piece only matters for 'x', a letter after '-' is read and dropped
	taken, s, err := parseDesignator(token, s, color.Flip())
	if err != nil {
		return nil, err
	}

	if len(s) < 2 {
		return nil, fmt.Errorf("%w: %q is truncated", ErrMoveFormat, token)
	}
	if len(s) > 2 {
		return nil, fmt.Errorf("%w: %q has trailing characters %q", ErrMoveFormat, token, s[2:])
	}
	to, err := board.ParseSquare(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMoveFormat, token, err)
	}

	if sep == 'x' {
		return CaptureMove{Piece: piece, From: from, To: to, Taken: taken}, nil
	}
	return PlainMove{Piece: piece, From: from, To: to}, nil
}

// parseDesignator consumes an optional uppercase piece letter, absent means pawn
func parseDesignator(token, s string, color core.Color) (board.Piece, string, error) {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'Z' {
		p, _ := board.ParsePiece("", color)
		return p, s, nil
	}
	p, err := board.ParsePiece(s[:1], color)
	if err != nil {
		return board.Piece{}, s, fmt.Errorf("%w: %q: %w", ErrMoveFormat, token, err)
	}
	return p, s[1:], nil
}

// Check explains why m cannot be played on b, nil when it can
func Check(m Move, b board.Board) error {
	from, to := m.Origin(), m.Target()

	if origin := b.Get(from); !origin.Equal(m.Mover()) {
		return fmt.Errorf("%w: %s: expected %v on %s, found %v", ErrIllegalMove, m, m.Mover(), from, origin)
	}

	switch mv := m.(type) {
	case PlainMove:
		if dest := b.Get(to); !dest.IsBlank() {
			return fmt.Errorf("%w: %s: destination %s occupied by %v", ErrIllegalMove, m, to, dest)
		}
	case CaptureMove:
		if dest := b.Get(to); !dest.Equal(mv.Taken) {
			return fmt.Errorf("%w: %s: expected %v on %s, found %v", ErrIllegalMove, m, mv.Taken, to, dest)
		}
	default:
		return fmt.Errorf("%w: unsupported move type %T", ErrIllegalMove, m)
	}

	if !board.CanMove(m.Mover(), b, from, to) {
		return fmt.Errorf("%w: %s: %s cannot move from %s to %s", ErrIllegalMove, m, m.Mover().Kind, from, to)
	}
	return nil
}

// Apply plays m on b. On failure it reports false and returns b untouched.
func Apply(m Move, b board.Board) (board.Board, bool) {
	if err := Check(m, b); err != nil {
		return b, false
	}
	return b.Set(m.Origin(), board.Blank).Set(m.Target(), m.Mover()), true
}
