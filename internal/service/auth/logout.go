package auth

import (
	"context"

	"go.uber.org/zap"
)

// Logout - закрывает сессию и убирает ее игровой стол вместе с балансом
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSession
	}

	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	s.tableRepo.Delete(ctx, sessionID)

	s.logger.Debug("session closed", zap.String("session_id", sessionID))
	return nil
}
