// FILE: internal/core/api.go
package core

// Request types

type CheckGameRequest struct {
	Game  string `json:"game" validate:"required,max=20000"`
	Board string `json:"board,omitempty" validate:"omitempty,max=100"` // FEN placement, default is the starting position
}

type CreateGameRequest struct {
	Board string `json:"board,omitempty" validate:"omitempty,max=100"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=5,max=7"` // e.g. "e2-e4", "Bc1xNh6"
}

type UndoRequest struct {
	Count int `json:"count" validate:"required,min=1,max=500"`
}

// Response types

type CheckResponse struct {
	CheckID    string      `json:"checkId,omitempty"`
	Valid      bool        `json:"valid"`
	Applied    int         `json:"applied"`
	Total      int         `json:"total"`
	FailedMove *FailedMove `json:"failedMove,omitempty"`
	Placement  string      `json:"placement"`
	Board      string      `json:"board"` // ASCII representation
}

type FailedMove struct {
	Index  int    `json:"index"` // 0-based position in the move sequence
	Move   string `json:"move"`
	Color  string `json:"color"` // "w" or "b"
	Reason string `json:"reason"`
}

type GameResponse struct {
	GameID    string    `json:"gameId"`
	Placement string    `json:"placement"`
	Turn      string    `json:"turn"` // "w" or "b"
	Moves     []string  `json:"moves"`
	Owner     string    `json:"owner,omitempty"`
	LastMove  *MoveInfo `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	Move        string `json:"move"`
	PlayerColor string `json:"playerColor"` // "w" or "b"
}

type BoardResponse struct {
	Placement string `json:"placement"`
	Board     string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
