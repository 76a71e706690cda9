package auth

import (
	"context"
	"errors"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	// Получение сессии (хэш refresh токена, время жизни) по sessionID
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}

	if session.Expired(s.now()) {
		return "", ErrSessionExpired
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", ErrInvalidSession
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	// После перезапуска сервера столов в памяти нет, живая сессия получает новый
	s.tableRepo.Open(ctx, session.ID, session.ExpiresAt)

	return token.GenerateAccessToken(
		user,
		session.ID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
