package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrepare(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "games.db")
	secret := strings.Repeat("s", 32)

	jwtSecret, store, err := prepare(secret, dbPath, false)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if string(jwtSecret) != secret {
		t.Errorf("secret = %q", jwtSecret)
	}
	if !store.IsHealthy() {
		t.Error("store unhealthy")
	}

	jwtSecret, store, err = prepare("", "", true)
	if err != nil || store != nil || string(jwtSecret) != devTokenSecret {
		t.Errorf("dev prepare = %q, %v, %v", jwtSecret, store, err)
	}

	jwtSecret, store, err = prepare("", "", false)
	if err != nil || store != nil || jwtSecret != nil {
		t.Errorf("default prepare = %q, %v, %v", jwtSecret, store, err)
	}
}

func TestPrepareFailureReleasesPIDFile(t *testing.T) {
	dir := t.TempDir()
	pidPath := filepath.Join(dir, "server.pid")

	for _, tc := range []struct {
		name, secret, storagePath string
	}{
		{"short secret", "short", ""},
		{"bad storage path", "", filepath.Join(dir, "missing", "games.db")},
	} {
		cleanup, err := managePIDFile(pidPath, true)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}

		if _, _, err := prepare(tc.secret, tc.storagePath, false); err == nil {
			t.Fatalf("%s: prepare succeeded", tc.name)
		}
		cleanup()

		if _, err := os.Stat(pidPath); !os.IsNotExist(err) {
			t.Errorf("%s: pid file left behind: %v", tc.name, err)
		}
	}
}
