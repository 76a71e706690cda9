package user_repo

import (
	"context"
	"errors"
	"mines_backend/internal/model"
	"mines_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"

	uniqueViolation = "23505"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
	qb     sq.StatementBuilderType
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := r.qb.Insert(table).
		Columns(colName, colLogin, colPasswordHash).
		Values(user.Name, user.Login, user.Password).
		Suffix("RETURNING " + colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, repository.ErrAlreadyExists
		}
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя (ID, Name, Login, Password) по его логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	query := r.qb.Select(colID, colName, colLogin, colPasswordHash).
		From(table).
		Where(sq.Eq{colLogin: login})

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
