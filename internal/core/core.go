// FILE: internal/core/core.go
package core

// Color identifies the side owning a piece, also used as the acting player of a move
type Color byte

const (
	ColorWhite Color = iota + 1
	ColorBlack
)

func (c Color) String() string {
	if c == ColorWhite {
		return "w"
	} else if c == ColorBlack {
		return "b"
	} else {
		return "-"
	}
}

// Name returns the long form used in messages
func (c Color) Name() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "None"
	}
}

// Flip returns the opponent
func (c Color) Flip() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}
