package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"github.com/google/uuid"
)

// refreshTokenSize 256 бит
const refreshTokenSize = 32

// NewSessionID - случайный идентификатор сессии (UUID v4)
func NewSessionID() string {
	return uuid.NewString()
}

func GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashRefreshToken - в БД хранится только sha256 от refresh токена
func HashRefreshToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func VerifyRefreshToken(token string, hash string) bool {
	return subtle.ConstantTimeCompare(
		[]byte(HashRefreshToken(token)),
		[]byte(hash),
	) == 1
}
