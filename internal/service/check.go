// FILE: internal/service/check.go
package service

import (
	"time"

	"chesscheck/internal/board"
	"chesscheck/internal/game"
	"chesscheck/internal/storage"

	"github.com/google/uuid"
)

// CheckResult is the outcome of validating a complete game text
type CheckResult struct {
	ID    string
	Total int
	Game  *game.Game
	game.Result
}

// CheckGame parses text and folds it over placement, the standard setup when
// empty. Malformed input is an error; an illegal move is a failed result.
func (s *Service) CheckGame(text, placement string) (*CheckResult, error) {
	initial := board.Initial()
	if placement != "" {
		b, err := board.ParsePlacement(placement)
		if err != nil {
			return nil, err
		}
		initial = b
	}

	g, err := game.Parse(text)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{
		ID:     uuid.New().String(),
		Total:  g.Len(),
		Game:   g,
		Result: g.Check(initial),
	}

	if s.store != nil {
		rec := storage.CheckRecord{
			CheckID:      res.ID,
			Valid:        res.OK,
			Applied:      res.Applied,
			Total:        res.Total,
			FinalBoard:   res.Board.Placement(),
			CheckedAtUTC: time.Now().UTC(),
		}
		if res.Failed != nil {
			rec.FailedMove = res.Failed.Move.String()
			rec.Reason = res.Failed.Reason.Error()
		}
		s.store.RecordCheck(rec)
	}

	return res, nil
}
