package mines

import "math/rand/v2"

// Source Источник случайных чисел для расстановки мин.
// *rand.Rand из math/rand/v2 удовлетворяет интерфейсу.
type Source interface {
	// IntN возвращает число из [0, n)
	IntN(n int) int
}

// globalSource Глобальный генератор math/rand/v2, безопасен для конкурентного использования
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// placeMines Частичная перетасовка Фишера-Йейтса: первые count элементов пула - мины.
// Ровно count обращений к источнику, без повторных попыток.
func placeMines(src Source, count int) [GridSize]bool {
	var pool [GridSize]int
	for i := range pool {
		pool[i] = i
	}

	var mask [GridSize]bool
	for i := 0; i < count; i++ {
		j := i + src.IntN(GridSize-i)
		pool[i], pool[j] = pool[j], pool[i]
		mask[pool[i]] = true
	}
	return mask
}
