package app

import (
	"context"
	"errors"
	"io/fs"
	authAPI "mines_backend/internal/api/auth"
	minesAPI "mines_backend/internal/api/mines"
	"mines_backend/internal/config"
	"mines_backend/internal/config/env"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/logger"
	"mines_backend/internal/middleware"
	"mines_backend/internal/repository"
	"mines_backend/internal/repository/auth_repo"
	"mines_backend/internal/repository/table_repo"
	"mines_backend/internal/repository/user_repo"
	"mines_backend/internal/service"
	"mines_backend/internal/service/auth"
	"mines_backend/internal/service/mines"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager
	ctxGetter *trmpgx.CtxGetter

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Mines bits
	minesCfg  config.MinesConfig
	tableRepo repository.TableRepository
	engine    *engine.Engine
	minesServ service.MinesService
	minesHand *minesAPI.Handler

	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		l, err := logger.New(sp.LogCfg())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// CtxGetter - достает транзакцию из контекста для репозиториев
func (sp *ServiceProvider) CtxGetter() *trmpgx.CtxGetter {
	if sp.ctxGetter == nil {
		sp.ctxGetter = trmpgx.DefaultCtxGetter
	}
	return sp.ctxGetter
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.userRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

// MinesCfg Без config.yaml игра работает на значениях по умолчанию
func (sp *ServiceProvider) MinesCfg() config.MinesConfig {
	if sp.minesCfg == nil {
		path := env.MinesConfigPath()
		cfg, err := env.NewMinesConfigFromYAML(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			sp.Logger().Warn("mines config not found, using defaults", zap.String("path", path))
			cfg = env.DefaultMinesConfig()
		case err != nil:
			panic("failed to get mines config: " + err.Error())
		}
		sp.minesCfg = cfg
	}
	return sp.minesCfg
}

func (sp *ServiceProvider) TableRepo() repository.TableRepository {
	if sp.tableRepo == nil {
		sp.tableRepo = table_repo.NewTableRepository(sp.MinesCfg().StartingBalance())
	}
	return sp.tableRepo
}

func (sp *ServiceProvider) Engine() *engine.Engine {
	if sp.engine == nil {
		sp.engine = engine.NewEngine(engine.WithHouseEdge(sp.MinesCfg().HouseEdge()))
	}
	return sp.engine
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.TableRepo(),
			sp.JWTCfg(),
			sp.Logger(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:            sp.AuthService(ctx),
			Logger:          sp.Logger(),
			RefreshDuration: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) MinesService() service.MinesService {
	if sp.minesServ == nil {
		sp.minesServ = mines.NewMinesService(sp.Engine(), sp.TableRepo(), sp.MinesCfg(), sp.Logger())
	}
	return sp.minesServ
}

func (sp *ServiceProvider) MinesHandler() *minesAPI.Handler {
	if sp.minesHand == nil {
		sp.minesHand = minesAPI.NewHandler(minesAPI.HandlerDeps{
			Serv:   sp.MinesService(),
			Logger: sp.Logger(),
		})
	}
	return sp.minesHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logging(sp.Logger()))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Mines endpoints
		minesHandler := sp.MinesHandler()
		r.Route("/mines", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
			rr.Get("/state", minesHandler.State)
			rr.Post("/start", minesHandler.Start)
			rr.Post("/reveal", minesHandler.Reveal)
			rr.Post("/cashout", minesHandler.Cashout)
		})

		sp.router = r
	}

	return sp.router
}

// Close Освобождает пул соединений и сбрасывает буфер логов
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
