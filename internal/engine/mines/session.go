package mines

import "github.com/shopspring/decimal"

// Session Владелец баланса и текущего раунда одного игрока.
// Не безопасна для конкурентного использования - вызывающий сериализует операции.
type Session struct {
	balance decimal.Decimal
	round   *Round
}

// RevealResult Результат Session.Reveal. Payout заполняется при автоматическом выигрыше
type RevealResult struct {
	Outcome RevealOutcome
	// AutoCashout - открыта последняя безопасная клетка, выигрыш зачислен
	AutoCashout bool
	Payout      decimal.Decimal
	Balance     decimal.Decimal
}

func NewSession(balance decimal.Decimal) *Session {
	return &Session{balance: balance}
}

func (s *Session) Balance() decimal.Decimal {
	return s.balance
}

// Round - текущий (или последний завершенный) раунд, nil если раундов еще не было
func (s *Session) Round() *Round {
	return s.round
}

// Start Начинает новый раунд. Активный раунд не перезаписывается.
func (s *Session) Start(e *Engine, mineCount int, bet decimal.Decimal) (*Round, error) {
	if s.round.Status() == StatusActive {
		return nil, ErrRoundAlreadyActive
	}

	round, balance, err := e.StartRound(mineCount, bet, s.balance)
	if err != nil {
		return nil, err
	}

	s.round = round
	s.balance = balance
	return round, nil
}

// Reveal Открывает клетку. Если открыта последняя безопасная клетка - выигрыш забирается автоматически.
// Комиссия проверяется до открытия, чтобы автоматический выигрыш не мог сорваться после изменения раунда
func (s *Session) Reveal(e *Engine, index int) (*RevealResult, error) {
	if !ValidHouseEdge(e.HouseEdge()) {
		return nil, ErrInvalidHouseEdge
	}

	outcome, err := e.RevealCell(s.round, index)
	if err != nil {
		return nil, err
	}

	res := &RevealResult{Outcome: outcome, Balance: s.balance}
	if safe, ok := outcome.(SafeReveal); ok && safe.Cleared {
		payout, err := s.Cashout(e)
		if err != nil {
			return nil, err
		}
		res.AutoCashout = true
		res.Payout = payout
		res.Balance = s.balance
	}
	return res, nil
}

// Cashout Забирает выигрыш с комиссией движка
func (s *Session) Cashout(e *Engine) (decimal.Decimal, error) {
	payout, balance, err := e.Cashout(s.round, s.balance, e.HouseEdge())
	if err != nil {
		return decimal.Zero, err
	}
	s.balance = balance
	return payout, nil
}
