package repository

import (
	"context"
	"errors"
	"mines_backend/internal/engine/mines"
	"mines_backend/internal/model"
	"time"
)

var (
	// ErrNotFound Запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists Нарушено ограничение уникальности
	ErrAlreadyExists = errors.New("already exists")
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// TableRepository Игровые столы: баланс и текущий раунд каждой сессии, только в памяти
type TableRepository interface {
	// Open открывает стол сессии входа до expiresAt, существующий стол не сбрасывается
	Open(ctx context.Context, sessionID string, expiresAt time.Time)
	// Do выполняет fn под блокировкой стола сессии, ErrNotFound если стол не открыт или истек
	Do(ctx context.Context, sessionID string, fn func(s *mines.Session) error) error
	// Delete убирает стол сессии (выход из аккаунта)
	Delete(ctx context.Context, sessionID string)
	// DeleteExpired убирает столы истекших сессий
	DeleteExpired(ctx context.Context, now time.Time) int
}
