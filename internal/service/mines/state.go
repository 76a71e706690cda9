package mines

import (
	"context"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/model"
)

// State - баланс и текущий раунд сессии
func (s *serv) State(ctx context.Context) (*model.MinesState, error) {
	var res *model.MinesState
	err := s.do(ctx, func(_ string, table *engine.Session) error {
		res = stateOf(table)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
