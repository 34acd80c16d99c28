// Package main runs the chesscheck API server: game validation, live game
// sessions with optional SQLite persistence, and database maintenance commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chesscheck/cmd/chesscheck-server/cli"
	"chesscheck/internal/http"
	"chesscheck/internal/service"
)

const (
	gracefulShutdownTimeout = time.Second * 5
	devTokenSecret          = "dev-secret-minimum-32-characters-long"
)

func main() {
	// Maintenance subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db":
			if err := cli.Run(os.Args[2:], os.Stdout); err != nil {
				log.Fatalf("CLI error: %v", err)
			}
			os.Exit(0)
		case "token":
			if err := cli.RunToken(os.Args[2:], os.Stdout); err != nil {
				log.Fatalf("CLI error: %v", err)
			}
			os.Exit(0)
		}
	}

	var (
		apiHost     = flag.String("api-host", "localhost", "API server host")
		apiPort     = flag.Int("api-port", 8080, "API server port")
		dev         = flag.Bool("dev", false, "Development mode (relaxed rate limits, fixed token secret)")
		storagePath = flag.String("storage-path", "", "Path to SQLite database file (disables persistence if empty)")
		pidPath     = flag.String("pid", "", "Optional path to write PID file")
		pidLock     = flag.Bool("pid-lock", false, "Lock PID file to allow only one instance (requires -pid)")
		tokenSecret = flag.String("token-secret", os.Getenv("CHESSCHECK_TOKEN_SECRET"), "HS256 secret for game owner tokens (disables ownership if empty)")
	)
	flag.Parse()

	if *pidLock && *pidPath == "" {
		log.Fatal("Error: -pid-lock flag requires the -pid flag to be set")
	}

	cleanup := func() {}
	if *pidPath != "" {
		var err error
		cleanup, err = managePIDFile(*pidPath, *pidLock)
		if err != nil {
			log.Fatalf("Failed to manage PID file: %v", err)
		}
		defer cleanup()
		log.Printf("PID file created at: %s (lock: %v)", *pidPath, *pidLock)
	}

	// 1. Token secret and storage, log.Fatalf skips defers so the PID file is released first
	jwtSecret, store, err := prepare(*tokenSecret, *storagePath, *dev)
	if err != nil {
		cleanup()
		log.Fatalf("Startup failed: %v", err)
	}

	// 2. Service owns storage from here on
	svc := service.New(store, jwtSecret)

	// 3. HTTP app
	app := http.NewFiberApp(svc, http.Config{DevMode: *dev})

	apiAddr := fmt.Sprintf("%s:%d", *apiHost, *apiPort)

	go func() {
		log.Printf("chesscheck API server starting...")
		log.Printf("API Listening on: http://%s", apiAddr)
		if *dev {
			log.Printf("Rate Limit: 20 requests/second per IP (DEV MODE)")
		} else {
			log.Printf("Rate Limit: 10 requests/second per IP")
		}
		log.Printf("Check Endpoint: http://%s/api/v1/check", apiAddr)
		log.Printf("Game Endpoints: http://%s/api/v1/games", apiAddr)
		log.Printf("Live Feed: ws://%s/ws/games/<gameId>", apiAddr)
		log.Printf("Health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			log.Printf("API server listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	// Release long-polls and websocket feeds before the listener drains
	if err := svc.Shutdown(gracefulShutdownTimeout); err != nil {
		log.Printf("Service shutdown error: %v", err)
	}

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
