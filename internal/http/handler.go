// FILE: internal/http/handler.go
package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chesscheck/internal/board"
	"chesscheck/internal/core"
	"chesscheck/internal/game"
	"chesscheck/internal/move"
	"chesscheck/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

const rateLimitRate = 10 // req/sec

// Config tunes the API app
type Config struct {
	DevMode   bool
	RateLimit int // requests per second per client, rateLimitRate when zero
}

// HTTPHandler serves the check and game API on top of the service
type HTTPHandler struct {
	svc *service.Service
}

func NewHTTPHandler(svc *service.Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func NewFiberApp(svc *service.Service, cfg Config) *fiber.App {
	h := NewHTTPHandler(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second, // above service.WaitTimeout
		IdleTimeout:  60 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	validateToken := TokenValidator(svc.ValidateToken)

	// Live board feed
	app.Get("/ws/games/:gameId", websocketUpgrade, websocket.New(h.WatchGame))

	api := app.Group("/api/v1")

	maxReq := cfg.RateLimit
	if maxReq <= 0 {
		maxReq = rateLimitRate
	}
	if cfg.DevMode {
		maxReq *= 2
	}
	api.Use(limiter.New(limiter.Config{
		Max:        maxReq,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			if xff := c.Get("X-Forwarded-For"); xff != "" {
				if idx := strings.Index(xff, ","); idx != -1 {
					return strings.TrimSpace(xff[:idx])
				}
				return xff
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(core.ErrorResponse{
				Error:   "rate limit exceeded",
				Code:    core.ErrRateLimitExceeded,
				Details: fmt.Sprintf("%d requests per second allowed", maxReq),
			})
		},
	}))

	api.Use(contentTypeValidator)
	api.Use(validationMiddleware)

	api.Post("/check", h.CheckGame)

	api.Post("/games", OptionalAuth(validateToken), h.CreateGame)
	api.Get("/games", AuthRequired(validateToken), h.ListGames)
	api.Get("/games/:gameId", h.GetGame)
	api.Delete("/games/:gameId", OptionalAuth(validateToken), h.DeleteGame)
	api.Post("/games/:gameId/moves", OptionalAuth(validateToken), h.MakeMove)
	api.Post("/games/:gameId/undo", OptionalAuth(validateToken), h.UndoMove)
	api.Get("/games/:gameId/board", h.GetBoard)
	api.Get("/games/:gameId/text", h.GetGameText)
	api.Get("/games/:gameId/wait", h.WaitGame)

	return app
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := core.ErrorResponse{
		Error: "internal server error",
		Code:  core.ErrInternalError,
	}

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		response.Error = e.Message

		switch code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed, fiber.StatusBadRequest, fiber.StatusUpgradeRequired:
			response.Code = core.ErrInvalidRequest
		case fiber.StatusTooManyRequests:
			response.Code = core.ErrRateLimitExceeded
		}
	}

	return c.Status(code).JSON(response)
}

// writeServiceError maps service and domain errors onto status and error code
func writeServiceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	code := core.ErrInvalidRequest

	switch {
	case errors.Is(err, service.ErrGameNotFound):
		status, code = fiber.StatusNotFound, core.ErrGameNotFound
	case errors.Is(err, service.ErrForbidden):
		status, code = fiber.StatusForbidden, core.ErrForbidden
	case errors.Is(err, service.ErrTooManyGames):
		status, code = fiber.StatusServiceUnavailable, core.ErrInternalError
	case errors.Is(err, move.ErrIllegalMove):
		code = core.ErrIllegalMove
	case errors.Is(err, move.ErrMoveFormat):
		code = core.ErrInvalidMove
	case errors.Is(err, game.ErrGameFormat):
		code = core.ErrInvalidGame
	case errors.Is(err, board.ErrPlacementParse):
		code = core.ErrInvalidBoard
	}

	return c.Status(status).JSON(core.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

func invalidGameID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
		Error:   "invalid game ID format",
		Code:    core.ErrInvalidRequest,
		Details: "game ID must be a valid UUID",
	})
}

func gameResponse(st *service.GameState) core.GameResponse {
	return core.GameResponse{
		GameID:    st.ID,
		Placement: st.Board.Placement(),
		Turn:      st.Turn.String(),
		Moves:     st.Moves,
		Owner:     st.Owner,
		LastMove:  st.LastMove,
	}
}

func renderOptions(c *fiber.Ctx) board.RenderOptions {
	if c.QueryBool("classic") {
		return board.ClassicRenderOptions
	}
	return board.DefaultRenderOptions
}

// Health check endpoint with storage status
func (h *HTTPHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now().Unix(),
		"storage": h.svc.GetStorageHealth(),
		"auth":    h.svc.AuthEnabled(),
	})
}

// CheckGame validates a complete game text in one request
func (h *HTTPHandler) CheckGame(c *fiber.Ctx) error {
	req, ok := validatedBody[core.CheckGameRequest](c)
	if !ok {
		return validationBypass(c)
	}

	res, err := h.svc.CheckGame(req.Game, req.Board)
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := core.CheckResponse{
		CheckID:   res.ID,
		Valid:     res.OK,
		Applied:   res.Applied,
		Total:     res.Total,
		Placement: res.Board.Placement(),
		Board:     res.Board.Render(renderOptions(c)),
	}
	if f := res.Failed; f != nil {
		resp.FailedMove = &core.FailedMove{
			Index:  f.Index,
			Move:   f.Move.String(),
			Color:  f.Color().String(),
			Reason: f.Reason.Error(),
		}
	}
	return c.JSON(resp)
}

// CreateGame starts a session, owned by the token subject when authenticated
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := validatedBody[core.CreateGameRequest](c)
	if !ok {
		return validationBypass(c)
	}

	userID, _ := c.Locals("userID").(string)

	st, err := h.svc.CreateGame(userID, req.Board)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(gameResponse(st))
}

// ListGames returns the caller's games
func (h *HTTPHandler) ListGames(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	games := h.svc.ListGames(userID)
	resp := make([]core.GameResponse, 0, len(games))
	for _, st := range games {
		resp = append(resp, gameResponse(st))
	}
	return c.JSON(resp)
}

// GetGame retrieves current game state
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	st, err := h.svc.GetGame(gameID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(gameResponse(st))
}

// WaitGame long-polls until the move count differs from the moveCount query
// parameter, the game is deleted, or the wait times out
func (h *HTTPHandler) WaitGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	moveCount, err := strconv.Atoi(c.Query("moveCount", "-1"))
	if err != nil {
		moveCount = -1
	}

	st, err := h.svc.GetGame(gameID)
	if err != nil {
		return writeServiceError(c, err)
	}

	// If move count already different, return immediately
	if len(st.Moves) != moveCount {
		return c.JSON(gameResponse(st))
	}

	ctx := c.Context()
	notify := h.svc.RegisterWait(gameID, moveCount, ctx)

	select {
	case <-notify:
		// Game might have been deleted meanwhile
		st, err := h.svc.GetGame(gameID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(gameResponse(st))

	case <-ctx.Done():
		return nil
	}
}

// MakeMove plays one move token for the side to move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	req, ok := validatedBody[core.MoveRequest](c)
	if !ok {
		return validationBypass(c)
	}

	userID, _ := c.Locals("userID").(string)

	st, err := h.svc.MakeMove(gameID, userID, req.Move)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(gameResponse(st))
}

// UndoMove undoes one or more moves
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	req, ok := validatedBody[core.UndoRequest](c)
	if !ok {
		return validationBypass(c)
	}

	userID, _ := c.Locals("userID").(string)

	st, err := h.svc.UndoMoves(gameID, userID, req.Count)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(gameResponse(st))
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	userID, _ := c.Locals("userID").(string)

	if err := h.svc.DeleteGame(gameID, userID); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	st, err := h.svc.GetGame(gameID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(core.BoardResponse{
		Placement: st.Board.Placement(),
		Board:     st.Board.Render(renderOptions(c)),
	})
}

// GetGameText returns the moves played so far in game text form
func (h *HTTPHandler) GetGameText(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	if !isValidUUID(gameID) {
		return invalidGameID(c)
	}

	text, err := h.svc.GameText(gameID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.SendString(text)
}
