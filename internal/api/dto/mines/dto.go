package mines

import "github.com/shopspring/decimal"

type StartRequest struct {
	MineCount int             `json:"mine_count"` // 1-24
	Bet       decimal.Decimal `json:"bet"`        // Ставка, > 0 и не больше баланса
}

type RevealRequest struct {
	Index *int `json:"index"` // 0-24, строка за строкой
}

type Round struct {
	Status       string          `json:"status"` // active, won, lost
	MineCount    int             `json:"mine_count"`
	Bet          decimal.Decimal `json:"bet"`
	Multiplier   decimal.Decimal `json:"multiplier"`
	PotentialWin decimal.Decimal `json:"potential_win"`
	Revealed     []int           `json:"revealed"`
	Mines        []int           `json:"mines,omitempty"` // Только после завершения раунда
}

type StateResponse struct {
	Balance decimal.Decimal `json:"balance"`
	Round   *Round          `json:"round,omitempty"`
}

type RevealResponse struct {
	Result       string          `json:"result"` // safe или mine
	Index        int             `json:"index"`
	Status       string          `json:"status"`
	Multiplier   decimal.Decimal `json:"multiplier"`
	PotentialWin decimal.Decimal `json:"potential_win"`
	Cleared      bool            `json:"cleared"`
	Mines        []int           `json:"mines,omitempty"`
	Payout       decimal.Decimal `json:"payout"`
	Balance      decimal.Decimal `json:"balance"`
}

type CashoutResponse struct {
	Payout     decimal.Decimal `json:"payout"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Balance    decimal.Decimal `json:"balance"`
	Mines      []int           `json:"mines"`
}
