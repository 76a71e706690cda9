package service

import (
	"context"
	"mines_backend/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type MinesService interface {
	State(ctx context.Context) (*model.MinesState, error)
	Start(ctx context.Context, req model.MinesStart) (*model.MinesState, error)
	Reveal(ctx context.Context, index int) (*model.MinesReveal, error)
	Cashout(ctx context.Context) (*model.MinesCashout, error)
}
