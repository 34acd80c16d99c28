package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"), false)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.InitDB(); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGameAndMoves(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	s.RecordNewGame(GameRecord{GameID: "g1", OwnerID: "u1", InitialBoard: "8/8/8/8/8/8/8/8", StartTimeUTC: now})
	s.RecordNewGame(GameRecord{GameID: "g2", InitialBoard: "8/8/8/8/8/8/8/8", StartTimeUTC: now.Add(time.Second)})
	for i, n := range []string{"e2-e4", "e7-e5", "Ng1-f3"} {
		color := "w"
		if i%2 == 1 {
			color = "b"
		}
		s.RecordMove(MoveRecord{GameID: "g1", MoveNumber: i + 1, Notation: n, BoardAfter: "x", PlayerColor: color, MoveTimeUTC: now})
	}
	s.Flush()

	if !s.IsHealthy() {
		t.Fatal("store degraded after valid writes")
	}

	all, err := s.QueryGames("*", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("games = %d, want 2", len(all))
	}
	if all[0].GameID != "g2" {
		t.Errorf("newest game first: got %s", all[0].GameID)
	}

	owned, err := s.QueryGames("", "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(owned) != 1 || owned[0].GameID != "g1" {
		t.Errorf("owner filter = %+v", owned)
	}

	moves, err := s.QueryMoves("g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 3 || moves[2].Notation != "Ng1-f3" || moves[1].PlayerColor != "b" {
		t.Fatalf("moves = %+v", moves)
	}

	s.DeleteUndoneMoves("g1", 1)
	s.Flush()
	moves, _ = s.QueryMoves("g1")
	if len(moves) != 1 || moves[0].Notation != "e2-e4" {
		t.Errorf("after undo moves = %+v", moves)
	}

	s.DeleteGame("g1")
	s.Flush()
	if games, _ := s.QueryGames("g1", ""); len(games) != 0 {
		t.Errorf("game not deleted: %+v", games)
	}
	if moves, _ := s.QueryMoves("g1"); len(moves) != 0 {
		t.Errorf("moves not deleted: %+v", moves)
	}
}

func TestChecks(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	s.RecordCheck(CheckRecord{CheckID: "c1", Valid: true, Applied: 4, Total: 4, FinalBoard: "b", CheckedAtUTC: now})
	s.RecordCheck(CheckRecord{CheckID: "c2", Valid: false, Applied: 1, Total: 3, FailedMove: "Ke8-e6", Reason: "illegal", FinalBoard: "b", CheckedAtUTC: now.Add(time.Second)})
	s.Flush()

	checks, err := s.QueryChecks(false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(checks) != 2 {
		t.Fatalf("checks = %d, want 2", len(checks))
	}

	failed, err := s.QueryChecks(true, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 {
		t.Fatalf("failed checks = %d, want 1", len(failed))
	}
	c := failed[0]
	if c.CheckID != "c2" || c.Valid || c.Applied != 1 || c.FailedMove != "Ke8-e6" {
		t.Errorf("failed check = %+v", c)
	}
}

func TestDegradedOnWriteFailure(t *testing.T) {
	s := newTestStore(t)

	// duplicate primary key fails the transaction
	s.RecordCheck(CheckRecord{CheckID: "dup", FinalBoard: "b", CheckedAtUTC: time.Now()})
	s.RecordCheck(CheckRecord{CheckID: "dup", FinalBoard: "b", CheckedAtUTC: time.Now()})
	s.Flush()

	if s.IsHealthy() {
		t.Fatal("store should be degraded after failed write")
	}
	if err := s.RecordCheck(CheckRecord{CheckID: "later"}); err != nil {
		t.Errorf("degraded writes should be dropped silently, got %v", err)
	}
}
