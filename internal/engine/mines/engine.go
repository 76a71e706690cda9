package mines

import (
	"github.com/shopspring/decimal"
)

// DefaultHouseEdge Комиссия казино по умолчанию (5%)
var DefaultHouseEdge = decimal.RequireFromString("0.05")

// Engine Правила игры: старт раунда, открытие клеток, расчет множителя и выплаты.
// Engine не хранит состояние раундов и баланса - они передаются и возвращаются явно.
type Engine struct {
	src       Source
	houseEdge decimal.Decimal
}

type Option func(*Engine)

// WithSource Задает источник случайных чисел (например, rand.New(rand.NewPCG(1, 2)) в тестах)
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

// WithHouseEdge Задает комиссию, применяемую в Session.Cashout
func WithHouseEdge(edge decimal.Decimal) Option {
	return func(e *Engine) {
		e.houseEdge = edge
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		src:       globalSource{},
		houseEdge: DefaultHouseEdge,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) HouseEdge() decimal.Decimal {
	return e.houseEdge
}

// StartRound Создает новый активный раунд и списывает ставку.
// Возвращает раунд и новый баланс. При ошибке баланс не меняется.
func (e *Engine) StartRound(mineCount int, bet, balance decimal.Decimal) (*Round, decimal.Decimal, error) {
	if mineCount < MinMines || mineCount > MaxMines {
		return nil, balance, ErrInvalidMineCount
	}
	if !bet.IsPositive() {
		return nil, balance, ErrInvalidBet
	}
	if bet.GreaterThan(balance) {
		return nil, balance, ErrInsufficientBalance
	}

	round := &Round{
		mineCount:  mineCount,
		bet:        bet,
		mines:      placeMines(e.src, mineCount),
		status:     StatusActive,
		multiplier: ComputeMultiplier(0, mineCount, GridSize),
	}
	return round, balance.Sub(bet), nil
}

// RevealCell Открывает клетку активного раунда. Баланс не затрагивается.
// Повторное открытие клетки отклоняется с ErrCellAlreadyRevealed и ничего не меняет.
func (e *Engine) RevealCell(round *Round, index int) (RevealOutcome, error) {
	if round.Status() != StatusActive {
		return nil, ErrNoActiveRound
	}
	if index < 0 || index >= GridSize {
		return nil, ErrInvalidCell
	}
	if round.revealed[index] {
		return nil, ErrCellAlreadyRevealed
	}
	if round.Cleared() {
		return nil, ErrBoardCleared
	}

	if round.mines[index] {
		round.status = StatusLost
		return MineHit{
			Index: index,
			Mines: round.Mines(),
		}, nil
	}

	round.revealed[index] = true
	round.opened++
	round.multiplier = ComputeMultiplier(round.opened, round.mineCount, GridSize)

	return SafeReveal{
		Index:        index,
		Multiplier:   round.multiplier,
		PotentialWin: round.PotentialWin(),
		Cleared:      round.Cleared(),
	}, nil
}

// Cashout Забирает выигрыш: payout = bet * multiplier * (1 - houseEdge).
// Возвращает выплату и новый баланс, раунд переходит в Won.
func (e *Engine) Cashout(round *Round, balance, houseEdge decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if round.Status() != StatusActive {
		return decimal.Zero, balance, ErrNoActiveRound
	}
	if !ValidHouseEdge(houseEdge) {
		return decimal.Zero, balance, ErrInvalidHouseEdge
	}

	payout := Payout(round.bet, round.multiplier, houseEdge)
	round.status = StatusWon
	return payout, balance.Add(payout), nil
}

// ValidHouseEdge - комиссия из [0, 1)
func ValidHouseEdge(edge decimal.Decimal) bool {
	return !edge.IsNegative() && edge.LessThan(decimal.NewFromInt(1))
}

// Payout Выплата с учетом комиссии казино
func Payout(bet, multiplier, houseEdge decimal.Decimal) decimal.Decimal {
	return bet.Mul(multiplier).Mul(decimal.NewFromInt(1).Sub(houseEdge))
}
