package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"mines_backend/internal/config"
	"mines_backend/internal/config/env"
	"mines_backend/internal/repository/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Load(".env"); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: loading .env: %v\n", err)
		}

		cfg, err := env.NewPGConfig()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		dbc, err := pgxpool.New(ctx, cfg.DSN())
		if err != nil {
			return fmt.Errorf("create db pool: %w", err)
		}
		defer dbc.Close()

		if err := migrations.Apply(ctx, dbc); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
		return nil
	},
}
