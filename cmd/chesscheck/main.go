// Package main is the chesscheck command: it validates a game file, or with the
// "play" argument runs an interactive board.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"chesscheck/internal/board"
	"chesscheck/internal/cli"
	"chesscheck/internal/client"
	"chesscheck/internal/service"
	"chesscheck/internal/storage"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s [flags] <game-file|->   validate a game, - reads stdin\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s [flags] play             interactive board\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var (
		theme     = flag.String("theme", "off", "Board color theme (off|brown|green|gray)")
		classic   = flag.Bool("classic", false, "Render blank squares as spaces")
		blank     = flag.String("blank", "", "Character for blank squares (overrides -classic)")
		placement = flag.String("board", "", "Starting piece placement in FEN, standard setup if empty")
		dbPath    = flag.String("db", "", "Record check results in this SQLite database")
		server    = flag.String("server", "", "Check against a chesscheck server at this URL instead of locally")
		trace     = flag.Bool("trace", false, "Log API requests and responses to stderr (with -server)")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	view := cli.NewView(os.Stdout)
	if err := view.SetTheme(cli.ColorTheme(*theme)); err != nil {
		log.Fatal(err)
	}
	opts := board.DefaultRenderOptions
	if *classic {
		opts = board.ClassicRenderOptions
	}
	if *blank != "" {
		if len(*blank) != 1 {
			log.Fatal("-blank takes a single character")
		}
		opts.Blank = (*blank)[0]
	}
	view.SetRenderOptions(opts)

	var store *storage.Store
	if *dbPath != "" {
		var err error
		store, err = storage.NewStore(*dbPath, false)
		if err != nil {
			log.Fatalf("Failed to open storage: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
	}
	svc := service.New(store, nil)
	defer svc.Close()

	if flag.Arg(0) == "play" {
		input, err := cli.NewLineReader(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("Failed to start input: %v", err)
		}
		defer input.Close()

		view.ShowWelcome()
		if err := cli.NewREPL(svc, view, input).Run(); err != nil {
			log.Printf("Input error: %v", err)
		}
		return
	}

	var (
		text []byte
		err  error
	)
	if flag.Arg(0) == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(flag.Arg(0))
	}
	if err != nil {
		log.Fatalf("Failed to read game: %v", err)
	}

	var ok bool
	if *server != "" {
		c := client.New(*server)
		if *trace {
			c.Trace = os.Stderr
		}
		ok, err = cli.CheckGameRemote(c, view, string(text), *placement)
	} else {
		ok, err = cli.CheckGame(svc, view, string(text), *placement)
	}
	if err != nil {
		svc.Close()
		log.Fatalf("Invalid game: %v", err)
	}
	if !ok {
		svc.Close()
		os.Exit(1)
	}
}
