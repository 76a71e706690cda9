package auth_repo

import (
	"context"
	"errors"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colUserID      = "user_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	qb     sq.StatementBuilderType
}

func NewAuthRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateSession - создает сессию в БД
// Принимает model.Session - (ID, UserID, RefreshToken, ExpiresAt)
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := r.qb.Insert(table).
		Columns(colSessionID, colUserID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.UserID, session.RefreshToken, session.ExpiresAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetSession - получить сессию (хэш refresh токена и время жизни) по session ID
func (r *repo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := r.qb.Select(colSessionID, colUserID, colRefreshHash, colExpiredTime).
		From(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var session model.Session
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&session.ID, &session.UserID, &session.RefreshToken, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &session, nil
}

// DeleteSession - удаляет сессию из БД.
// Принимает sessionID которую надо удалить
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	query := r.qb.Delete(table).
		Where(sq.Eq{colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// GetUserBySessionID - возвращает model пользователя (ID, Name, Login, Password) по session ID
func (r *repo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	query := r.qb.Select("u.id", "u.name", "u.login", "u.password_hash").
		From(table + " s").
		Join("users u ON s." + colUserID + " = u.id").
		Where(sq.Eq{"s." + colSessionID: sessionID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Name, &user.Login, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
