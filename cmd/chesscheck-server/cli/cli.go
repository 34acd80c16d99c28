// FILE: cmd/chesscheck-server/cli/cli.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"chesscheck/internal/service"
	"chesscheck/internal/storage"
)

// Run executes a "db" subcommand
func Run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand required: init, delete, query, moves, or checks")
	}

	switch args[0] {
	case "init":
		return runInit(args[1:], out)
	case "delete":
		return runDelete(args[1:], out)
	case "query":
		return runQuery(args[1:], out)
	case "moves":
		return runMoves(args[1:], out)
	case "checks":
		return runChecks(args[1:], out)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// openStore parses a flag set that carries -path and opens the database
func openStore(fs *flag.FlagSet, path *string, args []string) (*storage.Store, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		return nil, fmt.Errorf("database path required")
	}
	store, err := storage.NewStore(*path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

func runInit(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")

	store, err := openStore(fs, path, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	fmt.Fprintf(out, "Database initialized at: %s\n", *path)
	return nil
}

func runDelete(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")

	store, err := openStore(fs, path, args)
	if err != nil {
		return err
	}

	if err := store.DeleteDB(); err != nil {
		return fmt.Errorf("failed to delete database: %w", err)
	}

	fmt.Fprintf(out, "Database deleted: %s\n", *path)
	return nil
}

func runQuery(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	gameID := fs.String("gameId", "", "Game ID to filter (optional, * for all)")
	ownerID := fs.String("ownerId", "", "Owner to filter (optional, * for all)")

	store, err := openStore(fs, path, args)
	if err != nil {
		return err
	}
	defer store.Close()

	games, err := store.QueryGames(*gameID, *ownerID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(games) == 0 {
		fmt.Fprintln(out, "No games found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Game ID\tOwner\tInitial Board\tStart Time")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, g := range games {
		owner := g.OwnerID
		if owner == "" {
			owner = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			g.GameID,
			owner,
			g.InitialBoard,
			g.StartTimeUTC.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Fprintf(out, "\nFound %d game(s)\n", len(games))
	return nil
}

func runMoves(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("moves", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	gameID := fs.String("gameId", "", "Game ID (required)")

	store, err := openStore(fs, path, args)
	if err != nil {
		return err
	}
	defer store.Close()

	if *gameID == "" {
		return fmt.Errorf("game ID required")
	}

	moves, err := store.QueryMoves(*gameID)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(moves) == 0 {
		fmt.Fprintln(out, "No moves found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tColor\tMove\tBoard After\tTime")
	for _, m := range moves {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			m.MoveNumber, m.PlayerColor, m.Notation, m.BoardAfter,
			m.MoveTimeUTC.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func runChecks(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("checks", flag.ContinueOnError)
	path := fs.String("path", "", "Database file path (required)")
	failed := fs.Bool("failed", false, "Only show games that failed validation")
	limit := fs.Int("limit", 50, "Maximum rows, 0 for all")

	store, err := openStore(fs, path, args)
	if err != nil {
		return err
	}
	defer store.Close()

	checks, err := store.QueryChecks(*failed, *limit)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(checks) == 0 {
		fmt.Fprintln(out, "No checks found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Check ID\tValid\tApplied\tFailed Move\tReason\tTime")
	for _, c := range checks {
		fmt.Fprintf(w, "%s\t%t\t%d/%d\t%s\t%s\t%s\n",
			c.CheckID, c.Valid, c.Applied, c.Total, c.FailedMove, c.Reason,
			c.CheckedAtUTC.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

// RunToken mints a bearer token for the "token" subcommand. The secret must
// match the server's -token-secret.
func RunToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	secret := fs.String("secret", "", "Token signing secret, at least 32 characters (required)")
	subject := fs.String("subject", "", "Token subject, becomes the owner of created games (required)")
	ttl := fs.Duration("ttl", service.TokenTTL, "Token lifetime")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(*secret) < MinSecretLength {
		return fmt.Errorf("secret must be at least %d characters", MinSecretLength)
	}
	if *subject == "" {
		return fmt.Errorf("subject required")
	}

	svc := service.New(nil, []byte(*secret))
	defer svc.Close()

	token, err := svc.IssueToken(*subject, *ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(out, token)
	fmt.Fprintf(out, "expires: %s\n", time.Now().Add(*ttl).UTC().Format(time.RFC3339))
	return nil
}

// MinSecretLength is the shortest accepted HS256 signing secret
const MinSecretLength = 32
