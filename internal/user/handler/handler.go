package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/user"
	"github.com/fekuna/omnipos-warehouse-service/internal/user/dto"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
)

const resource = "users"

type UserHandler struct {
	uc     user.UseCase
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, log logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Route("/users", func(r chi.Router) {
		r.With(mw.Require(resource, authz.ActionRead)).Get("/", mw.ErrorHandler(h.ListUsers))
		r.With(mw.Require(resource, authz.ActionRead)).Get("/{id}", mw.ErrorHandler(h.GetUser))
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.UserFilters{
		SearchQuery: q.Get("q"),
		Role:        model.Role(q.Get("role")),
		Page:        handlerutils.QueryInt(r, "page", 1),
		PageSize:    handlerutils.QueryInt(r, "page_size", 0),
	}

	users, count, err := h.uc.ListUsers(r.Context(), filters)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, handlerutils.Page[model.User]{
		Items: users,
		Total: count,
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) error {
	u, err := h.uc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, u)
}
