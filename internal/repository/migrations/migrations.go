package migrations

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Schema - SQL схема таблиц пользователей и сессий
func Schema() string {
	return schema
}

// Apply Создает таблицы, если их еще нет. Повторный запуск безопасен
func Apply(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}
