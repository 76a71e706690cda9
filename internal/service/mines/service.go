package mines

import (
	"context"
	"errors"
	"mines_backend/internal/config"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/middleware"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/internal/service"

	"go.uber.org/zap"
)

var (
	ErrBetTooLarge = errors.New("bet exceeds table limit")
	ErrNoSession   = errors.New("no open game session")
)

type serv struct {
	engine    *engine.Engine
	tableRepo repository.TableRepository
	cfg       config.MinesConfig
	logger    *zap.Logger
}

// NewMinesService Игра Mines 5x5 поверх столов сессий
func NewMinesService(
	eng *engine.Engine,
	tableRepo repository.TableRepository,
	cfg config.MinesConfig,
	logger *zap.Logger,
) service.MinesService {
	return &serv{
		engine:    eng,
		tableRepo: tableRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// do - выполняет fn на столе сессии из контекста
func (s *serv) do(ctx context.Context, fn func(sessionID string, table *engine.Session) error) error {
	sessionID, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return ErrNoSession
	}
	err := s.tableRepo.Do(ctx, sessionID, func(table *engine.Session) error {
		return fn(sessionID, table)
	})
	// Стол закрыт выходом из аккаунта или истек вместе с сессией
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoSession
	}
	return err
}

func roundSnapshot(r *engine.Round) *model.MinesRound {
	if r == nil {
		return nil
	}
	multiplier, _ := r.Multiplier()
	return &model.MinesRound{
		Status:       r.Status().String(),
		MineCount:    r.MineCount(),
		Bet:          r.Bet(),
		Multiplier:   multiplier,
		PotentialWin: r.PotentialWin(),
		Revealed:     r.Revealed(),
		Mines:        r.Mines(),
	}
}

func stateOf(table *engine.Session) *model.MinesState {
	return &model.MinesState{
		Balance: table.Balance(),
		Round:   roundSnapshot(table.Round()),
	}
}
