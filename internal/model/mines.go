package model

import "github.com/shopspring/decimal"

type MinesStart struct {
	MineCount int
	Bet       decimal.Decimal
}

// MinesRound Снимок раунда для отображения
type MinesRound struct {
	Status       string
	MineCount    int
	Bet          decimal.Decimal
	Multiplier   decimal.Decimal
	PotentialWin decimal.Decimal
	Revealed     []int
	Mines        []int // только для завершенного раунда
}

type MinesState struct {
	Balance decimal.Decimal
	Round   *MinesRound // nil, если раундов еще не было
}

type MinesReveal struct {
	Safe         bool
	Index        int
	Multiplier   decimal.Decimal
	PotentialWin decimal.Decimal
	Cleared      bool
	Mines        []int
	Status       string
	Payout       decimal.Decimal
	Balance      decimal.Decimal
}

type MinesCashout struct {
	Payout     decimal.Decimal
	Multiplier decimal.Decimal
	Balance    decimal.Decimal
	Mines      []int
}
