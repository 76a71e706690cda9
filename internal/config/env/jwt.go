package env

import (
	"errors"
	"fmt"
	"mines_backend/internal/config"
	"os"
	"time"
)

const (
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"

	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 30 * 24 * time.Hour
)

type jwtConfig struct {
	refreshTokenDuration time.Duration
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

// NewJWTConfig - ключ подписи обязателен, длительности токенов имеют значения по умолчанию
func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, errors.New("access token secret key not found")
	}

	accessTokenDuration, err := durationFromEnv(accessTokenDurationEnvName, defaultAccessTokenDuration)
	if err != nil {
		return nil, err
	}

	refreshTokenDuration, err := durationFromEnv(refreshTokenDurationEnvName, defaultRefreshTokenDuration)
	if err != nil {
		return nil, err
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		refreshTokenDuration: refreshTokenDuration,
		accessTokenDuration:  accessTokenDuration,
	}, nil
}

func durationFromEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTokenDuration
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
