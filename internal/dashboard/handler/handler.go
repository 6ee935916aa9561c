package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger logger.ZapLogger
}

func NewDashboardHandler(uc dashboard.UseCase, log logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.With(mw.Require("dashboard", authz.ActionRead)).Get("/dashboard", mw.ErrorHandler(h.GetDashboard))
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) error {
	d, err := h.uc.GetDashboard(r.Context())
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, d)
}
