package mines

import (
	"errors"
	dto "mines_backend/internal/api/dto/mines"
	"mines_backend/internal/converter"
	engine "mines_backend/internal/engine/mines"
	"mines_backend/internal/service"
	minesServ "mines_backend/internal/service/mines"
	"mines_backend/pkg/req"
	"mines_backend/pkg/resp"
	"net/http"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv   service.MinesService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.MinesService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.serv.Start(r.Context(), converter.ToMinesStart(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(state))
}

func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RevealRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Index == nil {
		resp.WriteError(w, http.StatusBadRequest, "index is required")
		return
	}

	result, err := h.serv.Reveal(r.Context(), *payload.Index)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRevealResponse(result))
}

func (h *Handler) Cashout(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Cashout(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCashoutResponse(result))
}

// writeError Ошибки игры - ответ клиенту, остальные - 500 с записью в лог
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidMineCount),
		errors.Is(err, engine.ErrInvalidBet),
		errors.Is(err, engine.ErrInvalidCell),
		errors.Is(err, minesServ.ErrBetTooLarge):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrInsufficientBalance):
		resp.WriteError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, engine.ErrRoundAlreadyActive),
		errors.Is(err, engine.ErrCellAlreadyRevealed),
		errors.Is(err, engine.ErrBoardCleared):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrNoActiveRound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, minesServ.ErrNoSession):
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error("mines request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
