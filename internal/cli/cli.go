// FILE: internal/cli/cli.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdMove
	CmdUndo
	CmdBoard
	CmdColor
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m",
		darkBg:  "\033[48;5;22m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m",
		darkBg:  "\033[48;5;240m",
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

// View writes boards and messages for the command line tools
type View struct {
	output io.Writer
	theme  ColorTheme
	render board.RenderOptions
}

func NewView(output io.Writer) *View {
	return &View{
		output: output,
		theme:  ThemeOff,
		render: board.DefaultRenderOptions,
	}
}

func ParseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "board":
		return &Command{Type: CmdBoard}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Anything else is a move token
		return &Command{Type: CmdMove, Args: parts, Raw: input}
	}
}

func (v *View) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	v.theme = theme
	return nil
}

// SetRenderOptions selects the plain text board layout used when no theme is set
func (v *View) SetRenderOptions(opts board.RenderOptions) {
	v.render = opts
}

func (v *View) ShowMessage(msg string) {
	fmt.Fprintln(v.output, msg)
}

func (v *View) ShowError(err error) {
	v.ShowMessage(fmt.Sprintf("Error: %v", err))
}

func (v *View) DisplayBoard(b board.Board) {
	if v.theme == ThemeOff {
		v.ShowMessage(b.Render(v.render))
		return
	}

	theme := themes[v.theme]
	var sb strings.Builder

	sb.WriteString("  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < 8; f++ {
			sq, _ := board.NewSquare(f, r)
			p := b.Get(sq)

			bg := theme.darkBg
			if (r+f)%2 == 1 {
				bg = theme.lightBg
			}

			if p.IsBlank() {
				fmt.Fprintf(&sb, "%s  %s", bg, theme.reset)
				continue
			}
			fg := theme.black
			if p.Color == core.ColorWhite {
				fg = theme.white
			}
			fmt.Fprintf(&sb, "%s%s%c %s", bg, fg, p.Symbol(), theme.reset)
		}
		fmt.Fprintf(&sb, " %d\n", r+1)
	}
	sb.WriteString("  a b c d e f g h")

	v.ShowMessage(sb.String())
}

func (v *View) ShowHelp() {
	help := `Commands:
  new [placement]  - Start a new game, optionally from a FEN piece placement
  <move>           - Play a move (e.g. e2-e4, Ng1-f3, Bb5xNc6)
  <white> <black>  - Play a full round
  undo [count]     - Undo last move(s), default 1
  board            - Show the current board
  history          - Show the moves played so far
  color <theme>    - Set board color theme (off|brown|green|gray)
  quit/exit        - Exit the program
  help/?           - Show this help message`

	v.ShowMessage(help)
}

func (v *View) ShowWelcome() {
	v.ShowMessage("chesscheck interactive board")
	v.ShowMessage("Moves are <piece><from>-<to> or <piece><from>x<piece><to>, pawns without a letter.")
	v.ShowMessage("Type 'help' for commands.")
	v.ShowMessage("")
}

// ShowHistory lists moves as numbered rounds
func (v *View) ShowHistory(initial board.Board, moves []string) {
	v.ShowMessage(fmt.Sprintf("Starting placement: %s", initial.Placement()))
	for i := 0; i < len(moves); i += 2 {
		round := i/2 + 1
		if i+1 < len(moves) {
			v.ShowMessage(fmt.Sprintf("%d. %s | %s", round, moves[i], moves[i+1]))
		} else {
			v.ShowMessage(fmt.Sprintf("%d. %s | ...", round, moves[i]))
		}
	}
}
