package main

import (
	"fmt"
	"log"

	"chesscheck/cmd/chesscheck-server/cli"
	"chesscheck/internal/storage"
)

// prepare resolves the token secret and opens storage. Nothing is left open on error.
func prepare(tokenSecret, storagePath string, dev bool) ([]byte, *storage.Store, error) {
	var jwtSecret []byte
	switch {
	case tokenSecret != "":
		if len(tokenSecret) < cli.MinSecretLength {
			return nil, nil, fmt.Errorf("token secret must be at least %d characters", cli.MinSecretLength)
		}
		jwtSecret = []byte(tokenSecret)
		log.Printf("Game ownership tokens enabled")
	case dev:
		jwtSecret = []byte(devTokenSecret)
		log.Printf("Using fixed token secret (dev mode)")
	default:
		log.Printf("Game ownership tokens disabled (use -token-secret to enable)")
	}

	if storagePath == "" {
		log.Printf("Persistent storage disabled (use -storage-path to enable)")
		return jwtSecret, nil, nil
	}

	log.Printf("Initializing persistent storage at: %s", storagePath)
	store, err := storage.NewStore(storagePath, dev)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := store.InitDB(); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return jwtSecret, store, nil
}
