// FILE: internal/cli/input.go
package cli

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader supplies REPL input lines, io.EOF ends the session
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader uses readline with history when in is an interactive terminal and
// a plain scanner otherwise, so piped scripts work unchanged
func NewLineReader(in *os.File, out io.Writer) (LineReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return NewScannerReader(in, out), nil
	}

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".chesscheck_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{rl: rl}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			// ^C clears the line, ^D quits
			continue
		}
		return line, err
	}
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type scannerReader struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewScannerReader reads lines from in and echoes prompts to out
func NewScannerReader(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{input: bufio.NewScanner(in), output: out}
}

func (s *scannerReader) ReadLine(prompt string) (string, error) {
	io.WriteString(s.output, prompt)
	if !s.input.Scan() {
		if err := s.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.input.Text(), "\r"), nil
}

func (s *scannerReader) Close() error {
	return nil
}
