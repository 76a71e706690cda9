package mines

import (
	"context"
	"errors"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/middleware"
	"mines_backend/internal/model"
	"mines_backend/internal/repository/table_repo"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// zeroSource - мины всегда занимают клетки 0..mineCount-1
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

type minesCfg struct {
	maxBet decimal.Decimal
}

func (minesCfg) HouseEdge() decimal.Decimal       { return decimal.RequireFromString("0.05") }
func (minesCfg) StartingBalance() decimal.Decimal { return decimal.NewFromInt(1000) }
func (c minesCfg) MaxBet() decimal.Decimal        { return c.maxBet }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(cfg minesCfg) *serv {
	eng := engine.NewEngine(engine.WithSource(zeroSource{}), engine.WithHouseEdge(cfg.HouseEdge()))
	return NewMinesService(eng, table_repo.NewTableRepository(cfg.StartingBalance()), cfg, zap.NewNop()).(*serv)
}

// sessionCtx - контекст запроса сессии id с открытым столом, как после входа
func sessionCtx(s *serv, id string) context.Context {
	s.tableRepo.Open(context.Background(), id, time.Now().Add(time.Hour))
	return middleware.WithIdentity(context.Background(), 1, id)
}

func TestStateFreshSession(t *testing.T) {
	s := newTestService(minesCfg{})

	state, err := s.State(sessionCtx(s, "s1"))
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if !state.Balance.Equal(dec("1000")) {
		t.Errorf("expected balance 1000, got %s", state.Balance)
	}
	if state.Round != nil {
		t.Errorf("expected no round, got %+v", state.Round)
	}
}

func TestPlayAndCashout(t *testing.T) {
	s := newTestService(minesCfg{})
	ctx := sessionCtx(s, "s1")

	state, err := s.Start(ctx, model.MinesStart{MineCount: 5, Bet: dec("10")})
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if !state.Balance.Equal(dec("990")) {
		t.Errorf("expected balance 990, got %s", state.Balance)
	}
	if state.Round == nil || state.Round.Status != "active" {
		t.Fatalf("expected active round, got %+v", state.Round)
	}
	if state.Round.Mines != nil {
		t.Error("mines leaked while the round is active")
	}

	reveal, err := s.Reveal(ctx, 10)
	if err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if !reveal.Safe || !reveal.Multiplier.Equal(dec("1.05")) || !reveal.PotentialWin.Equal(dec("10.5")) {
		t.Errorf("unexpected reveal %+v", reveal)
	}
	if reveal.Mines != nil {
		t.Error("mines leaked on a safe reveal")
	}

	if _, err := s.Reveal(ctx, 10); !errors.Is(err, engine.ErrCellAlreadyRevealed) {
		t.Errorf("expected ErrCellAlreadyRevealed, got %v", err)
	}
	if _, err := s.Start(ctx, model.MinesStart{MineCount: 3, Bet: dec("1")}); !errors.Is(err, engine.ErrRoundAlreadyActive) {
		t.Errorf("expected ErrRoundAlreadyActive, got %v", err)
	}

	cashout, err := s.Cashout(ctx)
	if err != nil {
		t.Fatalf("Cashout() failed: %v", err)
	}
	if !cashout.Payout.Equal(dec("9.975")) {
		t.Errorf("expected payout 9.975, got %s", cashout.Payout)
	}
	if !cashout.Balance.Equal(dec("999.975")) {
		t.Errorf("expected balance 999.975, got %s", cashout.Balance)
	}
	if len(cashout.Mines) != 5 || cashout.Mines[0] != 0 || cashout.Mines[4] != 4 {
		t.Errorf("expected mines 0..4, got %v", cashout.Mines)
	}

	if _, err := s.Cashout(ctx); !errors.Is(err, engine.ErrNoActiveRound) {
		t.Errorf("expected ErrNoActiveRound, got %v", err)
	}
}

func TestRevealMine(t *testing.T) {
	s := newTestService(minesCfg{})
	ctx := sessionCtx(s, "s1")

	if _, err := s.Start(ctx, model.MinesStart{MineCount: 5, Bet: dec("10")}); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	reveal, err := s.Reveal(ctx, 3)
	if err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if reveal.Safe {
		t.Fatal("expected a mine")
	}
	if reveal.Status != "lost" {
		t.Errorf("expected lost, got %s", reveal.Status)
	}
	if len(reveal.Mines) != 5 {
		t.Errorf("expected 5 disclosed mines, got %v", reveal.Mines)
	}
	if !reveal.Balance.Equal(dec("990")) {
		t.Errorf("expected balance 990, got %s", reveal.Balance)
	}

	state, err := s.State(ctx)
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if state.Round.Status != "lost" || len(state.Round.Mines) != 5 {
		t.Errorf("unexpected state %+v", state.Round)
	}
}

func TestAutoCashout(t *testing.T) {
	s := newTestService(minesCfg{})
	ctx := sessionCtx(s, "s1")

	if _, err := s.Start(ctx, model.MinesStart{MineCount: engine.MaxMines, Bet: dec("10")}); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	reveal, err := s.Reveal(ctx, 24)
	if err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if !reveal.Cleared || reveal.Status != "won" {
		t.Errorf("expected cleared and won, got %+v", reveal)
	}
	if !reveal.Payout.Equal(dec("237.5")) {
		t.Errorf("expected payout 237.5, got %s", reveal.Payout)
	}
	if !reveal.Balance.Equal(dec("1227.5")) {
		t.Errorf("expected balance 1227.5, got %s", reveal.Balance)
	}
}

func TestStartValidation(t *testing.T) {
	s := newTestService(minesCfg{maxBet: dec("50")})
	ctx := sessionCtx(s, "s1")

	tests := []struct {
		name string
		req  model.MinesStart
		want error
	}{
		{"above table limit", model.MinesStart{MineCount: 3, Bet: dec("60")}, ErrBetTooLarge},
		{"invalid mines", model.MinesStart{MineCount: 25, Bet: dec("1")}, engine.ErrInvalidMineCount},
		{"zero bet", model.MinesStart{MineCount: 3, Bet: decimal.Zero}, engine.ErrInvalidBet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Start(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	state, err := s.State(ctx)
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if !state.Balance.Equal(dec("1000")) || state.Round != nil {
		t.Errorf("rejected starts changed the session: %+v", state)
	}
}

func TestInsufficientBalance(t *testing.T) {
	s := newTestService(minesCfg{})

	_, err := s.Start(sessionCtx(s, "s1"), model.MinesStart{MineCount: 3, Bet: dec("1000.01")})
	if !errors.Is(err, engine.ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestService(minesCfg{})

	if _, err := s.Start(sessionCtx(s, "a"), model.MinesStart{MineCount: 3, Bet: dec("100")}); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	state, err := s.State(sessionCtx(s, "b"))
	if err != nil {
		t.Fatalf("State() failed: %v", err)
	}
	if !state.Balance.Equal(dec("1000")) || state.Round != nil {
		t.Errorf("session b sees session a: %+v", state)
	}
}

func TestNoSessionInContext(t *testing.T) {
	s := newTestService(minesCfg{})

	if _, err := s.State(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
	if _, err := s.Reveal(context.Background(), 0); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestClosedSessionHasNoTable(t *testing.T) {
	s := newTestService(minesCfg{})
	ctx := sessionCtx(s, "s1")

	if _, err := s.Start(ctx, model.MinesStart{MineCount: 3, Bet: dec("100")}); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	// Выход из аккаунта убирает стол, а access токен еще действителен
	s.tableRepo.Delete(context.Background(), "s1")

	if _, err := s.State(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after logout, got %v", err)
	}
	if _, err := s.Start(ctx, model.MinesStart{MineCount: 3, Bet: dec("1")}); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after logout, got %v", err)
	}
	if n := s.tableRepo.(*table_repo.Repo).Len(); n != 0 {
		t.Errorf("closed session got a new table, %d open", n)
	}
}

func TestUnknownSessionHasNoTable(t *testing.T) {
	s := newTestService(minesCfg{})
	ctx := middleware.WithIdentity(context.Background(), 1, "never-logged-in")

	if _, err := s.State(ctx); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}
