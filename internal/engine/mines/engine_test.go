package mines

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seededEngine(seed uint64, opts ...Option) *Engine {
	opts = append([]Option{WithSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))}, opts...)
	return NewEngine(opts...)
}

// zeroSource всегда возвращает 0: мины занимают первые клетки поля
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func firstSafe(t *testing.T, r *Round) int {
	t.Helper()
	for i, mine := range r.mines {
		if !mine && !r.revealed[i] {
			return i
		}
	}
	t.Fatal("no hidden safe cell left")
	return -1
}

func firstMine(t *testing.T, r *Round) int {
	t.Helper()
	for i, mine := range r.mines {
		if mine {
			return i
		}
	}
	t.Fatal("round has no mines")
	return -1
}

func TestStartRoundPlacesMines(t *testing.T) {
	e := seededEngine(1)

	for mineCount := MinMines; mineCount <= MaxMines; mineCount++ {
		round, _, err := e.StartRound(mineCount, dec("1"), dec("100"))
		if err != nil {
			t.Fatalf("StartRound(%d) failed: %v", mineCount, err)
		}

		mines := maskIndexes(&round.mines)
		if len(mines) != mineCount {
			t.Errorf("mineCount=%d: expected %d mines, got %d", mineCount, mineCount, len(mines))
		}
		for _, pos := range mines {
			if pos < 0 || pos >= GridSize {
				t.Errorf("mine position %d out of range [0, %d)", pos, GridSize)
			}
		}
		if round.Status() != StatusActive {
			t.Errorf("expected active round, got %s", round.Status())
		}
		if round.RevealedCount() != 0 {
			t.Errorf("expected no revealed cells, got %d", round.RevealedCount())
		}
		if m, ok := round.Multiplier(); !ok || !m.Equal(dec("1")) {
			t.Errorf("expected initial multiplier 1.00, got %s (ok=%v)", m, ok)
		}
	}
}

func TestStartRoundScenario(t *testing.T) {
	e := seededEngine(7)

	round, balance, err := e.StartRound(5, dec("10"), dec("1000"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	if !balance.Equal(dec("990")) {
		t.Errorf("expected balance 990, got %s", balance)
	}
	if got := len(maskIndexes(&round.mines)); got != 5 {
		t.Errorf("expected 5 mines, got %d", got)
	}
	if round.Mines() != nil {
		t.Error("mines must not be disclosed while the round is active")
	}
}

func TestStartRoundErrors(t *testing.T) {
	e := seededEngine(2)

	tests := []struct {
		name      string
		mineCount int
		bet       string
		balance   string
		want      error
	}{
		{"zero mines", 0, "10", "100", ErrInvalidMineCount},
		{"too many mines", 25, "10", "100", ErrInvalidMineCount},
		{"negative mines", -3, "10", "100", ErrInvalidMineCount},
		{"zero bet", 3, "0", "100", ErrInvalidBet},
		{"negative bet", 3, "-5", "100", ErrInvalidBet},
		{"bet above balance", 3, "100.01", "100", ErrInsufficientBalance},
		{"mine count checked first", 30, "500", "100", ErrInvalidMineCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round, balance, err := e.StartRound(tt.mineCount, dec(tt.bet), dec(tt.balance))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if round != nil {
				t.Error("expected nil round on error")
			}
			if !balance.Equal(dec(tt.balance)) {
				t.Errorf("balance changed on error: %s -> %s", tt.balance, balance)
			}
		})
	}
}

func TestStartRoundWholeBalance(t *testing.T) {
	e := seededEngine(3)

	_, balance, err := e.StartRound(3, dec("50"), dec("50"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	if !balance.IsZero() {
		t.Errorf("expected zero balance, got %s", balance)
	}
}

func TestPlaceMinesFisherYates(t *testing.T) {
	t.Run("deterministic for a fixed source", func(t *testing.T) {
		a := placeMines(rand.New(rand.NewPCG(42, 1)), 10)
		b := placeMines(rand.New(rand.NewPCG(42, 1)), 10)
		if a != b {
			t.Error("same seed produced different layouts")
		}
	})

	t.Run("zero source takes the leading cells", func(t *testing.T) {
		mask := placeMines(zeroSource{}, 4)
		for i := 0; i < GridSize; i++ {
			if mask[i] != (i < 4) {
				t.Errorf("cell %d: expected mine=%v", i, i < 4)
			}
		}
	})

	t.Run("max mines leaves one safe cell", func(t *testing.T) {
		mask := placeMines(rand.New(rand.NewPCG(5, 5)), MaxMines)
		safe := 0
		for _, mine := range mask {
			if !mine {
				safe++
			}
		}
		if safe != 1 {
			t.Errorf("expected 1 safe cell, got %d", safe)
		}
	})

	t.Run("roughly uniform", func(t *testing.T) {
		src := rand.New(rand.NewPCG(11, 13))
		const draws = 25000
		var hits [GridSize]int
		for i := 0; i < draws; i++ {
			mask := placeMines(src, 1)
			for pos, mine := range mask {
				if mine {
					hits[pos]++
				}
			}
		}
		for pos, n := range hits {
			if n < 700 || n > 1300 {
				t.Errorf("cell %d drawn %d times, expected about %d", pos, n, draws/GridSize)
			}
		}
	})
}

func TestComputeMultiplier(t *testing.T) {
	tests := []struct {
		revealed, mines int
		want            string
	}{
		{0, 5, "1"},
		{1, 5, "1.05"},
		{10, 5, "2"},
		{19, 5, "20"},
		{20, 5, "25"},
		{1, 1, "1.04"},
		{12, 1, "2"},
		{0, 24, "1"},
		{1, 24, "25"},
		{3, 3, "1.16"},
	}

	for _, tt := range tests {
		got := ComputeMultiplier(tt.revealed, tt.mines, GridSize)
		if !got.Equal(dec(tt.want)) {
			t.Errorf("ComputeMultiplier(%d, %d) = %s, want %s", tt.revealed, tt.mines, got, tt.want)
		}
	}
}

func TestComputeMultiplierMonotonic(t *testing.T) {
	for mines := MinMines; mines <= MaxMines; mines++ {
		prev := ComputeMultiplier(0, mines, GridSize)
		for revealed := 1; revealed <= GridSize-mines; revealed++ {
			cur := ComputeMultiplier(revealed, mines, GridSize)
			if cur.LessThan(prev) {
				t.Errorf("mines=%d: multiplier decreased at %d: %s < %s", mines, revealed, cur, prev)
			}
			if cur.LessThan(dec("1")) {
				t.Errorf("mines=%d revealed=%d: multiplier %s below 1", mines, revealed, cur)
			}
			prev = cur
		}
	}
}

func TestRevealSafeCell(t *testing.T) {
	e := seededEngine(4)
	round, _, err := e.StartRound(5, dec("10"), dec("1000"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}

	idx := firstSafe(t, round)
	outcome, err := e.RevealCell(round, idx)
	if err != nil {
		t.Fatalf("RevealCell() failed: %v", err)
	}

	safe, ok := outcome.(SafeReveal)
	if !ok {
		t.Fatalf("expected SafeReveal, got %T", outcome)
	}
	if safe.Index != idx || safe.Cell() != idx {
		t.Errorf("expected index %d, got %d", idx, safe.Index)
	}
	if !safe.Multiplier.Equal(dec("1.05")) {
		t.Errorf("expected multiplier 1.05, got %s", safe.Multiplier)
	}
	if !safe.PotentialWin.Equal(dec("10.5")) {
		t.Errorf("expected potential win 10.5, got %s", safe.PotentialWin)
	}
	if safe.Cleared {
		t.Error("round must not be cleared after one reveal")
	}
	if round.RevealedCount() != 1 || !round.IsRevealed(idx) {
		t.Error("revealed set not updated")
	}
}

func TestRevealKeepsMasksDisjoint(t *testing.T) {
	e := seededEngine(9)
	round, _, err := e.StartRound(8, dec("5"), dec("100"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}

	for !round.Cleared() {
		if _, err := e.RevealCell(round, firstSafe(t, round)); err != nil {
			t.Fatalf("RevealCell() failed: %v", err)
		}
		for i := 0; i < GridSize; i++ {
			if round.revealed[i] && round.mines[i] {
				t.Fatalf("cell %d is both revealed and a mine", i)
			}
		}
		if round.RevealedCount() > round.SafeCells() {
			t.Fatalf("revealed %d of %d safe cells", round.RevealedCount(), round.SafeCells())
		}
	}

	if _, err := e.RevealCell(round, firstMine(t, round)); !errors.Is(err, ErrBoardCleared) {
		t.Errorf("expected ErrBoardCleared after full clear, got %v", err)
	}
	if m, _ := round.Multiplier(); !m.Equal(dec("25")) {
		t.Errorf("expected capped multiplier 25, got %s", m)
	}
}

func TestRevealMine(t *testing.T) {
	e := seededEngine(5)
	round, _, err := e.StartRound(5, dec("10"), dec("1000"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	if _, err := e.RevealCell(round, firstSafe(t, round)); err != nil {
		t.Fatalf("RevealCell() failed: %v", err)
	}

	idx := firstMine(t, round)
	outcome, err := e.RevealCell(round, idx)
	if err != nil {
		t.Fatalf("RevealCell() failed: %v", err)
	}

	hit, ok := outcome.(MineHit)
	if !ok {
		t.Fatalf("expected MineHit, got %T", outcome)
	}
	if hit.Index != idx {
		t.Errorf("expected index %d, got %d", idx, hit.Index)
	}
	if len(hit.Mines) != 5 {
		t.Errorf("expected all 5 mines disclosed, got %v", hit.Mines)
	}
	for _, pos := range hit.Mines {
		if !round.mines[pos] {
			t.Errorf("disclosed position %d is not a mine", pos)
		}
	}
	if round.Status() != StatusLost {
		t.Errorf("expected lost round, got %s", round.Status())
	}
	if len(round.Mines()) != 5 {
		t.Error("terminal round must disclose its mines")
	}

	if _, err := e.RevealCell(round, firstSafe(t, round)); !errors.Is(err, ErrNoActiveRound) {
		t.Errorf("expected ErrNoActiveRound after loss, got %v", err)
	}
}

func TestRevealErrors(t *testing.T) {
	e := seededEngine(6)

	if _, err := e.RevealCell(nil, 0); !errors.Is(err, ErrNoActiveRound) {
		t.Errorf("nil round: expected ErrNoActiveRound, got %v", err)
	}
	if _, err := e.RevealCell(&Round{}, 0); !errors.Is(err, ErrNoActiveRound) {
		t.Errorf("idle round: expected ErrNoActiveRound, got %v", err)
	}

	round, _, err := e.StartRound(3, dec("1"), dec("10"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	for _, idx := range []int{-1, GridSize, 100} {
		if _, err := e.RevealCell(round, idx); !errors.Is(err, ErrInvalidCell) {
			t.Errorf("index %d: expected ErrInvalidCell, got %v", idx, err)
		}
	}

	idx := firstSafe(t, round)
	if _, err := e.RevealCell(round, idx); err != nil {
		t.Fatalf("RevealCell() failed: %v", err)
	}
	before, _ := round.Multiplier()
	if _, err := e.RevealCell(round, idx); !errors.Is(err, ErrCellAlreadyRevealed) {
		t.Errorf("expected ErrCellAlreadyRevealed, got %v", err)
	}
	after, _ := round.Multiplier()
	if round.RevealedCount() != 1 || !before.Equal(after) {
		t.Error("repeated reveal changed the round")
	}
}

func TestCashout(t *testing.T) {
	e := seededEngine(8)
	round, balance, err := e.StartRound(5, dec("10"), dec("1000"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	if _, err := e.RevealCell(round, firstSafe(t, round)); err != nil {
		t.Fatalf("RevealCell() failed: %v", err)
	}

	payout, balance, err := e.Cashout(round, balance, dec("0.05"))
	if err != nil {
		t.Fatalf("Cashout() failed: %v", err)
	}
	if !payout.Equal(dec("9.975")) {
		t.Errorf("expected payout 9.975, got %s", payout)
	}
	if !balance.Equal(dec("999.975")) {
		t.Errorf("expected balance 999.975, got %s", balance)
	}
	if round.Status() != StatusWon {
		t.Errorf("expected won round, got %s", round.Status())
	}

	_, again, err := e.Cashout(round, balance, dec("0.05"))
	if !errors.Is(err, ErrNoActiveRound) {
		t.Errorf("second cashout: expected ErrNoActiveRound, got %v", err)
	}
	if !again.Equal(balance) {
		t.Error("failed cashout changed the balance")
	}
}

func TestCashoutErrors(t *testing.T) {
	e := seededEngine(10)

	if _, _, err := e.Cashout(nil, dec("10"), dec("0.05")); !errors.Is(err, ErrNoActiveRound) {
		t.Errorf("nil round: expected ErrNoActiveRound, got %v", err)
	}

	round, balance, err := e.StartRound(2, dec("10"), dec("10"))
	if err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}
	for _, edge := range []string{"-0.01", "1", "1.5"} {
		if _, _, err := e.Cashout(round, balance, dec(edge)); !errors.Is(err, ErrInvalidHouseEdge) {
			t.Errorf("edge %s: expected ErrInvalidHouseEdge, got %v", edge, err)
		}
	}
	if round.Status() != StatusActive {
		t.Error("rejected cashout ended the round")
	}

	payout, _, err := e.Cashout(round, balance, decimal.Zero)
	if err != nil {
		t.Fatalf("Cashout() failed: %v", err)
	}
	if !payout.Equal(dec("10")) {
		t.Errorf("zero reveals without edge should return the bet, got %s", payout)
	}
}

func TestNilRoundAccessors(t *testing.T) {
	var r *Round

	if r.Status() != StatusIdle {
		t.Errorf("expected idle, got %s", r.Status())
	}
	if r.MineCount() != 0 || r.RevealedCount() != 0 || r.SafeCells() != 0 {
		t.Errorf("expected zero counts, got mines=%d revealed=%d safe=%d", r.MineCount(), r.RevealedCount(), r.SafeCells())
	}
	if !r.Bet().IsZero() || !r.PotentialWin().IsZero() {
		t.Errorf("expected zero money, got bet=%s win=%s", r.Bet(), r.PotentialWin())
	}
	if _, ok := r.Multiplier(); ok {
		t.Error("nil round must have no multiplier")
	}
	if r.Cleared() || r.IsRevealed(0) {
		t.Error("nil round must have nothing revealed")
	}
	if r.Revealed() != nil || r.Mines() != nil {
		t.Errorf("expected nil slices, got revealed=%v mines=%v", r.Revealed(), r.Mines())
	}
}
