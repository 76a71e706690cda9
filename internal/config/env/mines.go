package env

import (
	"errors"
	"fmt"
	"mines_backend/internal/config"
	"mines_backend/internal/engine/mines"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	minesConfigEnvName = "MINES_CONFIG"
	defaultMinesConfig = "config.yaml"
)

var (
	defaultHouseEdge       = decimal.RequireFromString("0.05")
	defaultStartingBalance = decimal.NewFromInt(1000)
)

// minesFile Структура секции mines в config.yaml
type minesFile struct {
	Mines struct {
		HouseEdge       *float64 `yaml:"house_edge"`
		StartingBalance *float64 `yaml:"starting_balance"`
		MaxBet          *float64 `yaml:"max_bet"`
	} `yaml:"mines"`
}

type minesConfig struct {
	houseEdge       decimal.Decimal
	startingBalance decimal.Decimal
	maxBet          decimal.Decimal
}

// MinesConfigPath - путь к файлу настроек игры из MINES_CONFIG, по умолчанию config.yaml
func MinesConfigPath() string {
	if path := os.Getenv(minesConfigEnvName); len(path) != 0 {
		return path
	}
	return defaultMinesConfig
}

// NewMinesConfigFromYAML Читает настройки игры из YAML файла.
// Отсутствующие поля заполняются значениями по умолчанию
func NewMinesConfigFromYAML(path string) (config.MinesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mines config: %w", err)
	}
	return ParseMinesConfig(data)
}

func ParseMinesConfig(data []byte) (config.MinesConfig, error) {
	var file minesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse mines config: %w", err)
	}

	cfg := &minesConfig{
		houseEdge:       defaultHouseEdge,
		startingBalance: defaultStartingBalance,
		maxBet:          decimal.Zero,
	}

	if file.Mines.HouseEdge != nil {
		cfg.houseEdge = decimal.NewFromFloat(*file.Mines.HouseEdge)
	}
	if file.Mines.StartingBalance != nil {
		cfg.startingBalance = decimal.NewFromFloat(*file.Mines.StartingBalance)
	}
	if file.Mines.MaxBet != nil {
		cfg.maxBet = decimal.NewFromFloat(*file.Mines.MaxBet)
	}

	if !mines.ValidHouseEdge(cfg.houseEdge) {
		return nil, errors.New("house_edge must be in [0, 1)")
	}
	if cfg.startingBalance.IsNegative() {
		return nil, errors.New("starting_balance must not be negative")
	}
	if cfg.maxBet.IsNegative() {
		return nil, errors.New("max_bet must not be negative")
	}

	return cfg, nil
}

// DefaultMinesConfig - настройки по умолчанию, когда файла нет
func DefaultMinesConfig() config.MinesConfig {
	return &minesConfig{
		houseEdge:       defaultHouseEdge,
		startingBalance: defaultStartingBalance,
		maxBet:          decimal.Zero,
	}
}

func (cfg *minesConfig) HouseEdge() decimal.Decimal {
	return cfg.houseEdge
}

func (cfg *minesConfig) StartingBalance() decimal.Decimal {
	return cfg.startingBalance
}

func (cfg *minesConfig) MaxBet() decimal.Decimal {
	return cfg.maxBet
}
