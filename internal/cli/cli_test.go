package cli

import (
	"bytes"
	"strings"
	"testing"

	"chesscheck/internal/board"
	"chesscheck/internal/service"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  CommandType
		args  int
	}{
		{"", CmdNone, 0},
		{"   ", CmdNone, 0},
		{"new", CmdNew, 0},
		{"new 8/8/8/8/8/8/8/4K3", CmdNew, 1},
		{"undo 2", CmdUndo, 1},
		{"board", CmdBoard, 0},
		{"history", CmdHistory, 0},
		{"color green", CmdColor, 1},
		{"?", CmdHelp, 0},
		{"exit", CmdQuit, 0},
		{"e2-e4", CmdMove, 1},
		{"e2-e4 e7-e5", CmdMove, 2},
	}
	for _, tt := range tests {
		cmd := ParseCommand(tt.input)
		if cmd.Type != tt.want || len(cmd.Args) != tt.args {
			t.Errorf("ParseCommand(%q) = %v %v, want %v with %d args", tt.input, cmd.Type, cmd.Args, tt.want, tt.args)
		}
	}
}

func TestDisplayBoardPlain(t *testing.T) {
	var out bytes.Buffer
	v := NewView(&out)
	v.DisplayBoard(board.Initial())

	want := board.Initial().String() + "\n"
	if out.String() != want {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}

	out.Reset()
	v.SetRenderOptions(board.ClassicRenderOptions)
	v.DisplayBoard(board.Empty())
	if !strings.HasPrefix(out.String(), "8| | | | | | | | |\n") {
		t.Errorf("classic render =\n%s", out.String())
	}
}

func TestDisplayBoardTheme(t *testing.T) {
	var out bytes.Buffer
	v := NewView(&out)
	if err := v.SetTheme("purple"); err == nil {
		t.Error("unknown theme accepted")
	}
	if err := v.SetTheme(ThemeGreen); err != nil {
		t.Fatal(err)
	}
	v.DisplayBoard(board.Initial())
	if !strings.Contains(out.String(), "\033[") || !strings.Contains(out.String(), "K") {
		t.Errorf("themed board missing colors or pieces:\n%q", out.String())
	}
}

func TestCheckGameLegal(t *testing.T) {
	var out bytes.Buffer
	ok, err := CheckGame(service.New(nil, nil), NewView(&out), "e2-e4 e7-e5\nNg1-f3 Nb8-c6\n", "")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("legal game reported illegal:\n%s", out.String())
	}
	s := out.String()
	if !strings.Contains(s, "  4. Black Nb8-c6") || !strings.Contains(s, "Game is legal: 4 moves") {
		t.Errorf("output =\n%s", s)
	}
}

func TestCheckGameIllegal(t *testing.T) {
	var out bytes.Buffer
	ok, err := CheckGame(service.New(nil, nil), NewView(&out), "Ke1-e3", "")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("illegal game reported legal")
	}
	s := out.String()
	if !strings.Contains(s, "  1. White Ke1-e3  <- ") {
		t.Errorf("output =\n%s", s)
	}
	if !strings.Contains(s, board.Initial().String()) {
		t.Errorf("board before failing move not shown:\n%s", s)
	}
}

func TestCheckGameMalformed(t *testing.T) {
	var out bytes.Buffer
	if _, err := CheckGame(service.New(nil, nil), NewView(&out), "e2-e4 e7-e5 d2-d4", ""); err == nil {
		t.Error("three tokens on a line should fail to parse")
	}
}

func TestREPLSession(t *testing.T) {
	script := strings.Join([]string{
		"e2-e4",
		"new",
		"e2-e4 e7-e5",
		"Ke1-e3",
		"history",
		"undo 2",
		"color nope",
		"board",
		"quit",
		"e2-e4",
	}, "\n")

	var out bytes.Buffer
	view := NewView(&out)
	repl := NewREPL(service.New(nil, nil), view, NewScannerReader(strings.NewReader(script), &out))
	if err := repl.Run(); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	for _, want := range []string{
		"No active game",
		"w: e2-e4",
		"b: e7-e5",
		"illegal move",
		"1. e2-e4 | e7-e5",
		"invalid theme",
		"[w 1]> ",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}

	st, err := repl.svc.GetGame(repl.gameID)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Moves) != 0 {
		t.Errorf("moves after undo = %v", st.Moves)
	}
}

func TestREPLNewFromPlacement(t *testing.T) {
	var out bytes.Buffer
	repl := NewREPL(service.New(nil, nil), NewView(&out), NewScannerReader(strings.NewReader("new 4k3/8/8/8/8/8/8/4K3\nKe1-d2\n"), &out))
	if err := repl.Run(); err != nil {
		t.Fatal(err)
	}
	st, err := repl.svc.GetGame(repl.gameID)
	if err != nil {
		t.Fatal(err)
	}
	if got := st.Board.Placement(); got != "4k3/8/8/8/8/8/3K4/8" {
		t.Errorf("placement = %s", got)
	}
}
