package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"mines_backend/internal/console"
	engine "mines_backend/internal/engine/mines"
)

var (
	flagBalance   string
	flagHouseEdge string
	flagSeed      uint64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Mines in the terminal without a server or database.

Grid:
  ?  hidden cell
  *  gem
  X  mine (shown after the round ends)

Examples:
  mines play
  mines play --balance 50
  mines play --seed 42 --house-edge 0`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBalance, "balance", "1000", "Starting balance")
	playCmd.Flags().StringVar(&flagHouseEdge, "house-edge", "0.05", "House edge in [0, 1)")
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	balance, err := decimal.NewFromString(flagBalance)
	if err != nil || balance.IsNegative() {
		return fmt.Errorf("invalid --balance %q", flagBalance)
	}
	edge, err := decimal.NewFromString(flagHouseEdge)
	if err != nil || !engine.ValidHouseEdge(edge) {
		return fmt.Errorf("invalid --house-edge %q: %w", flagHouseEdge, engine.ErrInvalidHouseEdge)
	}

	opts := []engine.Option{engine.WithHouseEdge(edge)}
	if flagSeed != 0 {
		opts = append(opts, engine.WithSource(rand.New(rand.NewPCG(flagSeed, flagSeed))))
	}

	game := console.NewGame(engine.NewEngine(opts...), balance, cmd.OutOrStdout())
	return game.Run(cmd.Context(), cmd.InOrStdin())
}
