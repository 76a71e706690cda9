package middleware

import "context"

type ctxKey int

const (
	userIDKey ctxKey = iota
	sessionIDKey
)

// WithIdentity - кладет ID пользователя и сессии в контекст
func WithIdentity(ctx context.Context, userID int, sessionID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}
