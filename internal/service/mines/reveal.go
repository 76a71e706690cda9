package mines

import (
	"context"
	"fmt"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/model"

	"go.uber.org/zap"
)

// Reveal - открывает клетку. Последняя безопасная клетка автоматически забирает выигрыш
func (s *serv) Reveal(ctx context.Context, index int) (*model.MinesReveal, error) {
	var res *model.MinesReveal
	err := s.do(ctx, func(sessionID string, table *engine.Session) error {
		result, err := table.Reveal(s.engine, index)
		if err != nil {
			return err
		}

		round := table.Round()
		res = &model.MinesReveal{
			Index:   index,
			Status:  round.Status().String(),
			Payout:  result.Payout,
			Balance: result.Balance,
			Mines:   round.Mines(),
		}

		switch outcome := result.Outcome.(type) {
		case engine.SafeReveal:
			res.Safe = true
			res.Multiplier = outcome.Multiplier
			res.PotentialWin = outcome.PotentialWin
			res.Cleared = outcome.Cleared
		case engine.MineHit:
			res.Mines = outcome.Mines
			multiplier, _ := round.Multiplier()
			res.Multiplier = multiplier
		}

		if round.Status().Terminal() {
			s.logger.Info("round finished",
				zap.String("session_id", sessionID),
				zap.String("status", round.Status().String()),
				zap.Int("revealed", round.RevealedCount()),
				zap.String("payout", result.Payout.String()),
			)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reveal cell: %w", err)
	}
	return res, nil
}
