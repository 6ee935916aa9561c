package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/go-chi/chi"
)

const defaultLimit = 20

type NotificationHandler struct {
	feed *notify.Feed
}

func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.With(mw.Require("notifications", authz.ActionRead)).Get("/notifications", mw.ErrorHandler(h.ListNotifications))
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) error {
	limit := handlerutils.QueryInt(r, "limit", defaultLimit)
	return handlerutils.WriteJSON(w, http.StatusOK, h.feed.Recent(limit))
}
