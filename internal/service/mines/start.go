package mines

import (
	"context"
	"fmt"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/model"

	"go.uber.org/zap"
)

// Start - списывает ставку и начинает раунд с заданным количеством мин
func (s *serv) Start(ctx context.Context, req model.MinesStart) (*model.MinesState, error) {
	// Ограничение стола проверяется до движка, ноль - без ограничения
	if maxBet := s.cfg.MaxBet(); maxBet.IsPositive() && req.Bet.GreaterThan(maxBet) {
		return nil, ErrBetTooLarge
	}

	var res *model.MinesState
	err := s.do(ctx, func(sessionID string, table *engine.Session) error {
		if _, err := table.Start(s.engine, req.MineCount, req.Bet); err != nil {
			return err
		}

		s.logger.Info("round started",
			zap.String("session_id", sessionID),
			zap.Int("mine_count", req.MineCount),
			zap.String("bet", req.Bet.String()),
			zap.String("balance", table.Balance().String()),
		)
		res = stateOf(table)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("start round: %w", err)
	}
	return res, nil
}
