package middleware

import (
	"mines_backend/pkg/resp"
	"mines_backend/pkg/token"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// Auth Проверяет access токен из заголовка Authorization и кладет пользователя и сессию в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, bearerPrefix), secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := token.UserID(claims)
			if err != nil || claims.ID == "" {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID, claims.ID)))
		})
	}
}
