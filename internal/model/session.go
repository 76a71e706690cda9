package model

import "time"

// Session Сессия входа. RefreshToken хранится как sha256 хэш
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
