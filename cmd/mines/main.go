// mines - игра Mines 5x5: HTTP сервер с аккаунтами и консольная версия.
//
// Usage:
//
//	mines serve     - Start the HTTP API
//	mines migrate   - Create database tables
//	mines play      - Play in the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Mines - reveal gems on a 5x5 grid and cash out before hitting a mine",
	Long: `Mines is a single-player betting game on a 5x5 grid.

Available commands:
  serve    - Start the HTTP API (accounts, rounds)
  migrate  - Create users and sessions tables
  play     - Play in the terminal without a server

Examples:
  mines serve
  mines migrate
  mines play --balance 500 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(playCmd)
}
