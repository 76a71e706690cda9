package auth

import (
	"errors"
	"mines_backend/internal/config"
	"mines_backend/internal/repository"
	"mines_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSessionExpired     = errors.New("session expired")
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	tableRepo repository.TableRepository
	jwtConfig config.JWTConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	tableRepo repository.TableRepository,
	jwtConfig config.JWTConfig,
	logger *zap.Logger,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		tableRepo: tableRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
		now:       time.Now,
	}
}
