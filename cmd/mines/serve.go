package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mines_backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API. Settings are read from .env and config.yaml:

  HTTP_ADDRESS, PG_DSN, ACCESS_TOKEN, ACCESS_TOKEN_DURATION,
  REFRESH_TOKEN_DURATION, LOG_LEVEL, LOG_FORMAT, MINES_CONFIG`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.NewApp().Run(ctx)
	},
}
