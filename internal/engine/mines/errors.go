package mines

import "errors"

var (
	ErrInvalidMineCount    = errors.New("mine count must be between 1 and 24")
	ErrInvalidBet          = errors.New("bet must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRoundAlreadyActive  = errors.New("round already active")
	ErrNoActiveRound       = errors.New("no active round")
	ErrInvalidCell         = errors.New("cell index out of range")
	ErrCellAlreadyRevealed = errors.New("cell already revealed")
	ErrBoardCleared        = errors.New("all safe cells revealed, cash out")
	ErrInvalidHouseEdge    = errors.New("house edge must be in [0, 1)")
)
