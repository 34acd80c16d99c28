// FILE: internal/board/render.go
package board

import (
	"fmt"
	"strings"
)

// RenderOptions selects the cosmetic variant of the text board
type RenderOptions struct {
	Blank         byte
	TrailerPrefix string
}

var (
	DefaultRenderOptions = RenderOptions{Blank: '_', TrailerPrefix: "-|"}
	ClassicRenderOptions = RenderOptions{Blank: ' ', TrailerPrefix: "  "}
)

// Render draws rank 8 first, one "<rank>|<cell>|...|" line per rank, then the file trailer
func (b Board) Render(opts RenderOptions) string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d", r+1))
		for f := 0; f < 8; f++ {
			sq, _ := NewSquare(f, r)
			p := b.Get(sq)
			sb.WriteByte('|')
			if p.IsBlank() {
				sb.WriteByte(opts.Blank)
			} else {
				sb.WriteByte(p.Symbol())
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(opts.TrailerPrefix)
	sb.WriteString("a b c d e f g h")

	return sb.String()
}

func (b Board) String() string {
	return b.Render(DefaultRenderOptions)
}
