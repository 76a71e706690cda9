package auth

import (
	"context"
	"errors"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/pkg/pass"

	"go.uber.org/zap"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	// Получение пользователя из бд по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.jwtConfig.RefreshTokenDuration())
	data, err := s.openSession(ctx, user, expiresAt)
	if err != nil {
		return nil, err
	}
	s.tableRepo.Open(ctx, data.SessionID, expiresAt)

	s.logger.Info("user logged in", zap.Int("user_id", user.ID))
	return data, nil
}
