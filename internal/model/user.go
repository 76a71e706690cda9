package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

// UserClaims Subject - ID пользователя, ID - идентификатор сессии
type UserClaims struct {
	jwt.RegisteredClaims
}
