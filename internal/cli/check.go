// FILE: internal/cli/check.go
package cli

import (
	"fmt"

	"chesscheck/internal/board"
	"chesscheck/internal/client"
	"chesscheck/internal/core"
	"chesscheck/internal/game"
	"chesscheck/internal/service"
)

// CheckGame validates a complete game text and reports every applied move,
// then either the final board or the failing move with the board before it.
// It returns false when the game is not legal.
func CheckGame(svc *service.Service, view *View, text, placement string) (bool, error) {
	res, err := svc.CheckGame(text, placement)
	if err != nil {
		return false, err
	}

	moves := res.Game.Moves()
	for i := 0; i < res.Applied; i++ {
		view.ShowMessage(fmt.Sprintf("%3d. %-5s %s", i+1, game.ColorAt(i).Name(), moves[i]))
	}

	if res.OK {
		view.ShowMessage(fmt.Sprintf("Game is legal: %d moves", res.Total))
		view.DisplayBoard(res.Board)
		return true, nil
	}

	f := res.Failed
	view.ShowMessage(fmt.Sprintf("%3d. %-5s %s  <- %v", f.Index+1, f.Color().Name(), f.Move, f.Reason))
	view.ShowMessage(fmt.Sprintf("Game is illegal after %d of %d moves, board before the failing move:", res.Applied, res.Total))
	view.DisplayBoard(res.Board)
	return false, nil
}

// CheckGameRemote is CheckGame against a chesscheck server
func CheckGameRemote(c *client.Client, view *View, text, placement string) (bool, error) {
	res, err := c.CheckGame(text, placement, false)
	if err != nil {
		return false, err
	}

	final, err := board.ParsePlacement(res.Placement)
	if err != nil {
		return false, fmt.Errorf("server returned bad placement: %w", err)
	}

	if res.Valid {
		view.ShowMessage(fmt.Sprintf("Game is legal: %d moves (check %s)", res.Total, res.CheckID))
		view.DisplayBoard(final)
		return true, nil
	}

	f := res.FailedMove
	color := core.ColorWhite
	if f.Color == core.ColorBlack.String() {
		color = core.ColorBlack
	}
	view.ShowMessage(fmt.Sprintf("%3d. %-5s %s  <- %s", f.Index+1, color.Name(), f.Move, f.Reason))
	view.ShowMessage(fmt.Sprintf("Game is illegal after %d of %d moves, board before the failing move:", res.Applied, res.Total))
	view.DisplayBoard(final)
	return false, nil
}
