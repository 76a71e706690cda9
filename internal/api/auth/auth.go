package auth

import (
	"errors"
	dto "mines_backend/internal/api/dto/auth"
	"mines_backend/internal/converter"
	"mines_backend/internal/model"
	"mines_backend/internal/service"
	authServ "mines_backend/internal/service/auth"
	"mines_backend/pkg/req"
	"mines_backend/pkg/resp"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	refreshPath        = "/auth/refresh"
)

type HandlerDeps struct {
	Serv            service.AuthService
	Logger          *zap.Logger
	RefreshDuration time.Duration
}

type Handler struct {
	serv            service.AuthService
	logger          *zap.Logger
	refreshDuration time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:            deps.Serv,
		logger:          deps.Logger,
		refreshDuration: deps.RefreshDuration,
	}
}

// Register создаёт пользователя, открывает сессию
// и возвращает access_token, а session_id и refresh_token через cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		h.writeError(w, "register", err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToTokenResponse(data))
}

// Login создаёт сессию и возвращает access_token, session_id и refresh_token через cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		h.writeError(w, "login", err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTokenResponse(data))
}

// Refresh выдает новый access_token по session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	session, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refresh, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    session.Value,
		RefreshToken: refresh.Value,
	})
	if err != nil {
		h.writeError(w, "refresh", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTokenResponse(&model.AuthData{AccessToken: accessToken}))
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		h.writeError(w, "logout", err)
		return
	}

	deleteCookie(w, sessionIDCookie, "/")
	deleteCookie(w, refreshTokenCookie, refreshPath)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, authServ.ErrLoginTaken):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, authServ.ErrInvalidCredentials),
		errors.Is(err, authServ.ErrInvalidSession),
		errors.Is(err, authServ.ErrSessionExpired):
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, op+" failed")
	}
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(h.refreshDuration.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    data.RefreshToken,
		Path:     refreshPath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
