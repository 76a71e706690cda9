package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type MinesConfig interface {
	// HouseEdge Комиссия казино с выплаты, доля в [0, 1)
	HouseEdge() decimal.Decimal
	// StartingBalance Баланс новой игровой сессии
	StartingBalance() decimal.Decimal
	// MaxBet Максимальная ставка, ноль - без ограничения
	MaxBet() decimal.Decimal
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
	Format() string
}
