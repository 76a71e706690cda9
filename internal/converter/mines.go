package converter

import (
	dto "mines_backend/internal/api/dto/mines"
	"mines_backend/internal/model"
)

const (
	resultSafe = "safe"
	resultMine = "mine"
)

func ToMinesStart(req dto.StartRequest) model.MinesStart {
	return model.MinesStart{
		MineCount: req.MineCount,
		Bet:       req.Bet,
	}
}

func ToStateResponse(state *model.MinesState) dto.StateResponse {
	return dto.StateResponse{
		Balance: state.Balance,
		Round:   toRound(state.Round),
	}
}

func toRound(r *model.MinesRound) *dto.Round {
	if r == nil {
		return nil
	}
	revealed := r.Revealed
	if revealed == nil {
		revealed = []int{}
	}
	return &dto.Round{
		Status:       r.Status,
		MineCount:    r.MineCount,
		Bet:          r.Bet,
		Multiplier:   r.Multiplier,
		PotentialWin: r.PotentialWin,
		Revealed:     revealed,
		Mines:        r.Mines,
	}
}

func ToRevealResponse(r *model.MinesReveal) dto.RevealResponse {
	result := resultMine
	if r.Safe {
		result = resultSafe
	}
	return dto.RevealResponse{
		Result:       result,
		Index:        r.Index,
		Status:       r.Status,
		Multiplier:   r.Multiplier,
		PotentialWin: r.PotentialWin,
		Cleared:      r.Cleared,
		Mines:        r.Mines,
		Payout:       r.Payout,
		Balance:      r.Balance,
	}
}

func ToCashoutResponse(c *model.MinesCashout) dto.CashoutResponse {
	return dto.CashoutResponse{
		Payout:     c.Payout,
		Multiplier: c.Multiplier,
		Balance:    c.Balance,
		Mines:      c.Mines,
	}
}
