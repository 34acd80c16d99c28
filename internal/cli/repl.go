// FILE: internal/cli/repl.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chesscheck/internal/board"
	"chesscheck/internal/service"
)

// REPL plays a single local game against the service, one command per line
type REPL struct {
	svc     *service.Service
	view    *View
	input   LineReader
	gameID  string
	initial board.Board
}

func NewREPL(svc *service.Service, view *View, input LineReader) *REPL {
	return &REPL{
		svc:   svc,
		view:  view,
		input: input,
	}
}

// Run processes commands until quit or end of input
func (r *REPL) Run() error {
	for {
		line, err := r.input.ReadLine(r.prompt())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !r.ProcessCommand(ParseCommand(line)) {
			return nil
		}
	}
}

func (r *REPL) prompt() string {
	if r.gameID == "" {
		return "> "
	}
	st, err := r.svc.GetGame(r.gameID)
	if err != nil {
		return "> "
	}
	return fmt.Sprintf("[%s %d]> ", st.Turn, len(st.Moves)+1)
}

// ProcessCommand executes one command, it returns false to exit
func (r *REPL) ProcessCommand(cmd *Command) bool {
	switch cmd.Type {
	case CmdQuit:
		return false

	case CmdNone:
		return true

	case CmdHelp:
		r.view.ShowHelp()

	case CmdNew:
		r.newGame(strings.Join(cmd.Args, " "))

	case CmdMove:
		if r.gameID == "" {
			r.view.ShowMessage("No active game. Use 'new' to start one.")
			return true
		}
		if len(cmd.Args) > 2 {
			r.view.ShowError(fmt.Errorf("at most two moves per line, got %d", len(cmd.Args)))
			return true
		}
		for _, token := range cmd.Args {
			st, err := r.svc.MakeMove(r.gameID, "", token)
			if err != nil {
				r.view.ShowError(err)
				break
			}
			r.view.ShowMessage(fmt.Sprintf("%s: %s", st.LastMove.PlayerColor, st.LastMove.Move))
		}
		r.showBoard()

	case CmdUndo:
		if r.gameID == "" {
			r.view.ShowMessage("No active game.")
			return true
		}
		count := 1
		if len(cmd.Args) > 0 {
			n, err := strconv.Atoi(cmd.Args[0])
			if err != nil || n < 1 {
				r.view.ShowError(fmt.Errorf("invalid undo count: %s", cmd.Args[0]))
				return true
			}
			count = n
		}
		if _, err := r.svc.UndoMoves(r.gameID, "", count); err != nil {
			r.view.ShowError(err)
			return true
		}
		r.showBoard()

	case CmdBoard:
		if r.gameID == "" {
			r.view.ShowMessage("No active game.")
			return true
		}
		r.showBoard()

	case CmdHistory:
		if r.gameID == "" {
			r.view.ShowMessage("No active game.")
			return true
		}
		st, err := r.svc.GetGame(r.gameID)
		if err != nil {
			r.view.ShowError(err)
			return true
		}
		r.view.ShowHistory(r.initial, st.Moves)

	case CmdColor:
		if len(cmd.Args) != 1 {
			r.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		if err := r.view.SetTheme(ColorTheme(cmd.Args[0])); err != nil {
			r.view.ShowError(err)
		}
	}
	return true
}

func (r *REPL) newGame(placement string) {
	st, err := r.svc.CreateGame("", placement)
	if err != nil {
		r.view.ShowError(err)
		return
	}
	if r.gameID != "" {
		r.svc.DeleteGame(r.gameID, "")
	}
	r.gameID = st.ID
	r.initial = st.Board
	r.view.DisplayBoard(st.Board)
}

func (r *REPL) showBoard() {
	st, err := r.svc.GetGame(r.gameID)
	if err != nil {
		r.view.ShowError(err)
		return
	}
	r.view.DisplayBoard(st.Board)
}
