// FILE: internal/service/service.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"chesscheck/internal/game"
	"chesscheck/internal/storage"

	"github.com/lixenwraith/auth"
)

const (
	MaxGames = 1000
	TokenTTL = 7 * 24 * time.Hour
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrForbidden    = errors.New("not the game owner")
	ErrTooManyGames = errors.New("game limit reached")
	ErrAuthDisabled = errors.New("token secret not configured")
)

// Service holds live game sessions, validates submitted games and persists both
// when a store is configured
type Service struct {
	games     map[string]*entry
	mu        sync.RWMutex
	store     *storage.Store // nil if persistence disabled
	jwtSecret []byte         // nil disables token issue and validation
	waiter    *WaitRegistry
}

type entry struct {
	session *game.Session
	created time.Time
}

// New creates a new service instance with optional storage and token secret
func New(store *storage.Store, jwtSecret []byte) *Service {
	return &Service{
		games:     make(map[string]*entry),
		store:     store,
		jwtSecret: jwtSecret,
		waiter:    NewWaitRegistry(),
	}
}

// GetStorageHealth returns the storage component status
func (s *Service) GetStorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// RegisterWait registers a client to wait for game state changes. A change that
// landed before registration wakes the client at once.
func (s *Service) RegisterWait(gameID string, moveCount int, ctx context.Context) <-chan struct{} {
	notify := s.waiter.RegisterWait(gameID, moveCount, ctx)

	st, err := s.GetGame(gameID)
	switch {
	case err != nil:
		s.waiter.RemoveGame(gameID)
	case len(st.Moves) != moveCount:
		s.waiter.NotifyGame(gameID, len(st.Moves))
	}

	return notify
}

// AuthEnabled reports whether a token secret is configured
func (s *Service) AuthEnabled() bool {
	return len(s.jwtSecret) > 0
}

// IssueToken mints an HS256 token whose subject becomes the owner of games it creates
func (s *Service) IssueToken(subject string, ttl time.Duration) (string, error) {
	if !s.AuthEnabled() {
		return "", ErrAuthDisabled
	}
	if ttl <= 0 {
		ttl = TokenTTL
	}
	claims := map[string]any{
		"scope": "games",
	}
	return auth.GenerateHS256Token(s.jwtSecret, subject, claims, ttl)
}

// ValidateToken verifies a token and returns its subject with claims
func (s *Service) ValidateToken(token string) (string, map[string]any, error) {
	if !s.AuthEnabled() {
		return "", nil, ErrAuthDisabled
	}
	return auth.ValidateHS256Token(s.jwtSecret, token)
}

// Shutdown releases waiting clients and closes storage
func (s *Service) Shutdown(timeout time.Duration) error {
	err := s.waiter.Shutdown(timeout)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*entry)

	if s.store != nil {
		return s.store.Close()
	}

	return nil
}
