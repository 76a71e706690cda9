package mines

import "github.com/shopspring/decimal"

// multiplierPrecision Знаков после запятой у множителя
const multiplierPrecision = 2

// ComputeMultiplier Множитель по честным шансам: 1 / (1 - revealed/safe), где safe = gridSize - mineCount.
// Эквивалентно safe / (safe - revealed), округляется до двух знаков.
// Когда открыты все безопасные клетки знаменатель равен нулю, поэтому множитель ограничен значением gridSize.
func ComputeMultiplier(revealedCount, mineCount, gridSize int) decimal.Decimal {
	safe := gridSize - mineCount
	if safe <= 0 || revealedCount <= 0 {
		return decimal.NewFromInt(1).Round(multiplierPrecision)
	}
	if revealedCount >= safe {
		return decimal.NewFromInt(int64(gridSize)).Round(multiplierPrecision)
	}
	return decimal.NewFromInt(int64(safe)).
		DivRound(decimal.NewFromInt(int64(safe-revealedCount)), multiplierPrecision)
}
