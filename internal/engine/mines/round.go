package mines

import (
	"github.com/shopspring/decimal"
)

const (
	// GridSize Количество клеток поля 5x5
	GridSize = 25
	// GridSide Длина стороны поля
	GridSide = 5
	// MinMines Минимальное количество мин в раунде
	MinMines = 1
	// MaxMines Максимальное количество мин в раунде (остается одна безопасная клетка)
	MaxMines = GridSize - 1
)

// Status Состояние раунда
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "idle"
	}
}

// Terminal - раунд завершен (выигрыш или проигрыш)
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Round Один раунд игры от старта до выигрыша или проигрыша.
// Нулевое значение - раунд в состоянии Idle.
type Round struct {
	mineCount  int
	bet        decimal.Decimal
	mines      [GridSize]bool
	revealed   [GridSize]bool
	opened     int
	status     Status
	multiplier decimal.Decimal
}

func (r *Round) Status() Status {
	if r == nil {
		return StatusIdle
	}
	return r.status
}

func (r *Round) MineCount() int {
	if r == nil {
		return 0
	}
	return r.mineCount
}

func (r *Round) Bet() decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	return r.bet
}

// Multiplier - текущий множитель. ok == false, пока раунд не начат
func (r *Round) Multiplier() (decimal.Decimal, bool) {
	if r == nil || r.status == StatusIdle {
		return decimal.Zero, false
	}
	return r.multiplier, true
}

// PotentialWin - ставка умноженная на текущий множитель (без учета комиссии)
func (r *Round) PotentialWin() decimal.Decimal {
	m, ok := r.Multiplier()
	if !ok {
		return decimal.Zero
	}
	return r.bet.Mul(m)
}

// RevealedCount - количество открытых безопасных клеток
func (r *Round) RevealedCount() int {
	if r == nil {
		return 0
	}
	return r.opened
}

// SafeCells - общее количество безопасных клеток поля
func (r *Round) SafeCells() int {
	if r == nil {
		return 0
	}
	return GridSize - r.mineCount
}

// Cleared - открыты все безопасные клетки
func (r *Round) Cleared() bool {
	return r != nil && r.status != StatusIdle && r.opened >= r.SafeCells()
}

func (r *Round) IsRevealed(index int) bool {
	if r == nil || index < 0 || index >= GridSize {
		return false
	}
	return r.revealed[index]
}

// Revealed - индексы открытых клеток по возрастанию
func (r *Round) Revealed() []int {
	if r == nil {
		return nil
	}
	return maskIndexes(&r.revealed)
}

// Mines - позиции всех мин. Раскрываются только после завершения раунда
func (r *Round) Mines() []int {
	if r == nil || !r.status.Terminal() {
		return nil
	}
	return maskIndexes(&r.mines)
}

func maskIndexes(mask *[GridSize]bool) []int {
	res := make([]int, 0, GridSize)
	for i, set := range mask {
		if set {
			res = append(res, i)
		}
	}
	return res
}

// RevealOutcome Результат открытия клетки: SafeReveal или MineHit
type RevealOutcome interface {
	Cell() int
}

// SafeReveal Открыта безопасная клетка
type SafeReveal struct {
	Index        int
	Multiplier   decimal.Decimal
	PotentialWin decimal.Decimal
	// Cleared - это была последняя безопасная клетка
	Cleared bool
}

func (s SafeReveal) Cell() int { return s.Index }

// MineHit Игрок попал на мину, раунд проигран
type MineHit struct {
	Index int
	Mines []int
}

func (m MineHit) Cell() int { return m.Index }
