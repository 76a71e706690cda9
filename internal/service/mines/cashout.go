package mines

import (
	"context"
	"fmt"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/model"

	"go.uber.org/zap"
)

// Cashout - забирает выигрыш с комиссией казино и раскрывает мины
func (s *serv) Cashout(ctx context.Context) (*model.MinesCashout, error) {
	var res *model.MinesCashout
	err := s.do(ctx, func(sessionID string, table *engine.Session) error {
		payout, err := table.Cashout(s.engine)
		if err != nil {
			return err
		}

		round := table.Round()
		multiplier, _ := round.Multiplier()
		res = &model.MinesCashout{
			Payout:     payout,
			Multiplier: multiplier,
			Balance:    table.Balance(),
			Mines:      round.Mines(),
		}

		s.logger.Info("round finished",
			zap.String("session_id", sessionID),
			zap.String("status", round.Status().String()),
			zap.Int("revealed", round.RevealedCount()),
			zap.String("payout", payout.String()),
		)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cashout: %w", err)
	}
	return res, nil
}
