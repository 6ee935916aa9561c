package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/servererrors"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
)

type authService interface {
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	svc    authService
	logger logger.ZapLogger
}

func NewAuthHandler(svc authService, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: log,
	}
}

// RegisterPublicRoutes mounts the routes reachable without a session.
func (h *AuthHandler) RegisterPublicRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Post("/auth/login", mw.ErrorHandler(h.Login))
}

// RegisterRoutes expects r to already run mw.Authenticate.
func (h *AuthHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Post("/auth/logout", mw.ErrorHandler(h.Logout))
	r.Get("/auth/me", mw.ErrorHandler(h.Me))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return err
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, res)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	uc := auth.FromContext(r.Context())
	if uc == nil {
		return servererrors.Unauthorized(servererrors.ErrUnauthorized)
	}
	if err := h.svc.Logout(r.Context(), uc.Token); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) error {
	uc := auth.FromContext(r.Context())
	if uc == nil {
		return servererrors.Unauthorized(servererrors.ErrUnauthorized)
	}
	return handlerutils.WriteJSON(w, http.StatusOK, uc.User)
}
