// FILE: internal/http/websocket.go
package http

import (
	"context"
	"log"

	"github.com/gofiber/websocket/v2"
)

// WatchGame streams the game state as JSON on connect and after every move or
// undo. The socket is closed when the game is deleted.
func (h *HTTPHandler) WatchGame(c *websocket.Conn) {
	gameID := c.Params("gameId")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Client messages are ignored, reading only detects disconnects
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	seen := -1
	for {
		st, err := h.svc.GetGame(gameID)
		if err != nil {
			c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game not found"))
			return
		}

		if len(st.Moves) != seen {
			if err := c.WriteJSON(gameResponse(st)); err != nil {
				log.Printf("websocket write error for game %s: %v", gameID, err)
				return
			}
			seen = len(st.Moves)
		}

		waitCtx, waitCancel := context.WithCancel(ctx)
		notify := h.svc.RegisterWait(gameID, seen, waitCtx)

		select {
		case _, ok := <-notify:
			waitCancel()
			if !ok {
				return // registry shut down
			}
		case <-ctx.Done():
			waitCancel()
			return
		}
	}
}
