// FILE: internal/service/game.go
package service

import (
	"fmt"
	"sort"
	"time"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
	"chesscheck/internal/game"
	"chesscheck/internal/storage"

	"github.com/google/uuid"
)

// GameState is a point-in-time copy of a session, safe to read without locks
type GameState struct {
	ID       string
	Owner    string
	Board    board.Board
	Turn     core.Color
	Moves    []string
	LastMove *core.MoveInfo
}

func (s *Service) state(id string, e *entry) *GameState {
	snap := e.session.CurrentSnapshot()
	st := &GameState{
		ID:    id,
		Owner: e.session.Owner(),
		Board: snap.Board,
		Turn:  snap.NextTurn,
		Moves: e.session.Moves(),
	}
	if snap.Move != nil {
		st.LastMove = &core.MoveInfo{
			Move:        snap.PreviousMove,
			PlayerColor: snap.NextTurn.Flip().String(),
		}
	}
	return st
}

// CreateGame starts a session from placement, the standard setup when empty
func (s *Service) CreateGame(ownerID, placement string) (*GameState, error) {
	initial := board.Initial()
	if placement != "" {
		b, err := board.ParsePlacement(placement)
		if err != nil {
			return nil, err
		}
		initial = b
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.games) >= MaxGames {
		return nil, ErrTooManyGames
	}

	id := s.generateGameID()
	e := &entry{session: game.NewSession(initial, ownerID), created: time.Now().UTC()}
	s.games[id] = e

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:       id,
			OwnerID:      ownerID,
			InitialBoard: initial.Placement(),
			StartTimeUTC: e.created,
		})
	}

	return s.state(id, e), nil
}

// generateGameID creates a new unique game ID, caller holds the lock
func (s *Service) generateGameID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return s.state(gameID, e), nil
}

// lookup finds a game the requester may modify, caller holds the write lock
func (s *Service) lookup(gameID, requesterID string) (*entry, error) {
	e, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if owner := e.session.Owner(); owner != "" && owner != requesterID {
		return nil, ErrForbidden
	}
	return e, nil
}

// MakeMove plays one token for the side to move. Format and legality failures
// wrap move.ErrMoveFormat and move.ErrIllegalMove.
func (s *Service) MakeMove(gameID, requesterID, token string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(gameID, requesterID)
	if err != nil {
		return nil, err
	}

	mover := e.session.NextTurn()
	m, err := e.session.Play(token)
	if err != nil {
		return nil, err
	}

	moveCount := len(e.session.Moves())
	s.waiter.NotifyGame(gameID, moveCount)

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:      gameID,
			MoveNumber:  moveCount,
			Notation:    m.String(),
			BoardAfter:  e.session.CurrentBoard().Placement(),
			PlayerColor: mover.String(),
			MoveTimeUTC: time.Now().UTC(),
		})
	}

	return s.state(gameID, e), nil
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID, requesterID string, count int) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(gameID, requesterID)
	if err != nil {
		return nil, err
	}

	if err := e.session.UndoMoves(count); err != nil {
		return nil, err
	}

	remaining := len(e.session.Moves())
	s.waiter.NotifyGame(gameID, remaining)

	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, remaining)
	}

	return s.state(gameID, e), nil
}

// DeleteGame removes a game, only its owner may delete an owned game
func (s *Service) DeleteGame(gameID, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(gameID, requesterID); err != nil {
		return err
	}

	// Notify and remove all waiters before deletion
	s.waiter.RemoveGame(gameID)
	delete(s.games, gameID)

	if s.store != nil {
		s.store.DeleteGame(gameID)
	}
	return nil
}

// ListGames returns the games owned by ownerID, oldest first
func (s *Service) ListGames(ownerID string) []*GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type owned struct {
		id string
		e  *entry
	}
	var found []owned
	for id, e := range s.games {
		if e.session.Owner() == ownerID {
			found = append(found, owned{id, e})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].e.created.Equal(found[j].e.created) {
			return found[i].id < found[j].id
		}
		return found[i].e.created.Before(found[j].e.created)
	})

	states := make([]*GameState, 0, len(found))
	for _, o := range found {
		states = append(states, s.state(o.id, o.e))
	}
	return states
}

// GameText returns the session's moves in game text form
func (s *Service) GameText(gameID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.games[gameID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return e.session.Game().String(), nil
}
