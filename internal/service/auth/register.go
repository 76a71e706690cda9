package auth

import (
	"context"
	"errors"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"
	"mines_backend/pkg/pass"
	"mines_backend/pkg/token"
	"time"

	"go.uber.org/zap"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	if user.Login == "" || user.Password == "" {
		return nil, ErrInvalidCredentials
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var data *model.AuthData
	expiresAt := s.now().Add(s.jwtConfig.RefreshTokenDuration())

	// Пользователь и его первая сессия создаются в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				return ErrLoginTaken
			}
			return err
		}

		data, err = s.openSession(ctx, user, expiresAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.tableRepo.Open(ctx, data.SessionID, expiresAt)

	s.logger.Info("user registered", zap.Int("user_id", user.ID))
	return data, nil
}

// openSession - создает сессию с refresh токеном и выдает access токен.
// Стол игры открывает вызывающий, когда сессия точно сохранена
func (s *serv) openSession(ctx context.Context, user *model.User, expiresAt time.Time) (*model.AuthData, error) {
	sessionID := token.NewSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    expiresAt,
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		sessionID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
