package app

import (
	"context"
	"errors"
	"fmt"
	"mines_backend/internal/config"
	"mines_backend/internal/repository"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	shutdownTimeout    = 10 * time.Second
	tableSweepInterval = time.Minute
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run Поднимает HTTP сервер и останавливает его при отмене ctx
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(".env")
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	log := s.ServiceProvider.Logger()
	if envErr != nil {
		log.Warn("error loading .env file", zap.Error(envErr))
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go sweepTables(ctx, s.ServiceProvider.TableRepo(), log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("address", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

// sweepTables Убирает столы сессий, истекших без выхода из аккаунта
func sweepTables(ctx context.Context, tables repository.TableRepository, log *zap.Logger) {
	ticker := time.NewTicker(tableSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := tables.DeleteExpired(ctx, now); n > 0 {
				log.Debug("expired tables evicted", zap.Int("count", n))
			}
		}
	}
}
