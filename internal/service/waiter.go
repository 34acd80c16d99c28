// FILE: internal/service/waiter.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// WaitTimeout bounds a single long-poll
	WaitTimeout = 25 * time.Second
)

// WaitRegistry parks clients until the move count of a game differs from the one
// they last saw, the game is deleted, or the wait times out
type WaitRegistry struct {
	mu       sync.Mutex
	waiters  map[string]map[*waiter]struct{} // gameID → parked clients
	shutdown chan struct{}
	wg       sync.WaitGroup
}

type waiter struct {
	seen   int           // move count the client already has
	notify chan struct{} // capacity 1, a pending wakeup is enough
	timer  *time.Timer
}

func NewWaitRegistry() *WaitRegistry {
	return &WaitRegistry{
		waiters:  make(map[string]map[*waiter]struct{}),
		shutdown: make(chan struct{}),
	}
}

// RegisterWait returns a channel that receives once when the game changes or the
// wait expires. It is closed instead when the registry shuts down.
func (w *WaitRegistry) RegisterWait(gameID string, moveCount int, ctx context.Context) <-chan struct{} {
	wt := &waiter{
		seen:   moveCount,
		notify: make(chan struct{}, 1),
	}
	wt.timer = time.AfterFunc(WaitTimeout, wt.wake)

	out := make(chan struct{}, 1)

	w.mu.Lock()
	set, ok := w.waiters[gameID]
	if !ok {
		set = make(map[*waiter]struct{})
		w.waiters[gameID] = set
	}
	set[wt] = struct{}{}
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer wt.timer.Stop()
		select {
		case <-ctx.Done():
			w.remove(gameID, wt)
		case <-wt.notify:
			w.remove(gameID, wt)
			out <- struct{}{}
		case <-w.shutdown:
			close(out)
		}
	}()

	return out
}

func (wt *waiter) wake() {
	select {
	case wt.notify <- struct{}{}:
	default:
	}
}

// NotifyGame wakes every client whose last seen move count differs from currentMoveCount
func (w *WaitRegistry) NotifyGame(gameID string, currentMoveCount int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for wt := range w.waiters[gameID] {
		if wt.seen != currentMoveCount {
			wt.wake()
		}
	}
}

// RemoveGame wakes and forgets all clients of a deleted game
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	set := w.waiters[gameID]
	delete(w.waiters, gameID)
	w.mu.Unlock()

	for wt := range set {
		wt.wake()
	}
}

// Shutdown releases every parked client and waits for their goroutines
func (w *WaitRegistry) Shutdown(timeout time.Duration) error {
	select {
	case <-w.shutdown:
		return nil
	default:
		close(w.shutdown)
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("wait registry shutdown timed out after %s", timeout)
	}
}

func (w *WaitRegistry) remove(gameID string, wt *waiter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	set := w.waiters[gameID]
	delete(set, wt)
	if len(set) == 0 {
		delete(w.waiters, gameID)
	}
}

// pending counts parked clients of a game
func (w *WaitRegistry) pending(gameID string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.waiters[gameID])
}
