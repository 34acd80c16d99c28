// FILE: internal/game/game.go
package game

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
	"chesscheck/internal/move"
)

// ErrGameFormat reports a line that does not hold one or two move tokens
var ErrGameFormat = errors.New("invalid game format")

// Game is a parsed sequence of moves, White first and alternating
type Game struct {
	moves []move.Move
}

// Failure describes the move that stopped a game
type Failure struct {
	Index  int // position in the move sequence
	Move   move.Move
	Reason error
}

// Color of the side that played the failed move
func (f *Failure) Color() core.Color {
	return ColorAt(f.Index)
}

// Result is the outcome of applying a game
type Result struct {
	Board   board.Board // final board, or the board before the failed move
	OK      bool
	Applied int
	Failed  *Failure
}

// ColorAt is the side to move at a given ply
func ColorAt(index int) core.Color {
	if index%2 == 0 {
		return core.ColorWhite
	}
	return core.ColorBlack
}

// Parse reads one round per line: "<white>" or "<white> <black>". Only trailing lines
// may be blank. Any malformed line or token fails the whole parse.
func Parse(text string) (*Game, error) {
	g := &Game{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	complete := true
	blankLine := 0
	for scanner.Scan() {
		lineNo++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			if blankLine == 0 {
				blankLine = lineNo
			}
			continue
		}
		if blankLine != 0 {
			return nil, fmt.Errorf("%w: line %d has no moves, expected 1 or 2", ErrGameFormat, blankLine)
		}
		if len(tokens) > 2 {
			return nil, fmt.Errorf("%w: line %d has %d moves, expected 1 or 2", ErrGameFormat, lineNo, len(tokens))
		}
		if !complete {
			return nil, fmt.Errorf("%w: line %d follows a round without Black's move", ErrGameFormat, lineNo)
		}

		for i, token := range tokens {
			color := core.ColorWhite
			if i == 1 {
				color = core.ColorBlack
			}
			m, err := move.Parse(token, color)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrGameFormat, lineNo, err)
			}
			g.moves = append(g.moves, m)
		}
		complete = len(tokens) == 2
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGameFormat, err)
	}

	return g, nil
}

// Moves returns a copy of the move sequence
func (g *Game) Moves() []move.Move {
	return append([]move.Move(nil), g.moves...)
}

func (g *Game) Len() int {
	return len(g.moves)
}

// Apply folds the moves over b. On the first illegal move it stops and returns
// the board reached so far with false.
func (g *Game) Apply(b board.Board) (board.Board, bool) {
	r := g.Check(b)
	return r.Board, r.OK
}

// Check is Apply with a description of the failure
func (g *Game) Check(b board.Board) Result {
	for i, m := range g.moves {
		if err := move.Check(m, b); err != nil {
			return Result{
				Board:   b,
				Applied: i,
				Failed:  &Failure{Index: i, Move: m, Reason: err},
			}
		}
		b, _ = move.Apply(m, b)
	}
	return Result{Board: b, OK: true, Applied: len(g.moves)}
}

// String writes White and Black moves of a round on the same line
func (g *Game) String() string {
	var sb strings.Builder
	for i, m := range g.moves {
		sb.WriteString(m.String())
		if i%2 == 0 && i+1 < len(g.moves) {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
