package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/auth"
	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/order"
	"github.com/fekuna/omnipos-warehouse-service/internal/order/dto"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
)

const resource = "orders"

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Route("/orders", func(r chi.Router) {
		r.With(mw.Require(resource, authz.ActionRead)).Get("/", mw.ErrorHandler(h.ListOrders))
		r.With(mw.Require(resource, authz.ActionWrite)).Post("/", mw.ErrorHandler(h.CreateOrder))
		r.With(mw.Require(resource, authz.ActionRead)).Get("/{id}", mw.ErrorHandler(h.GetOrder))
		r.With(mw.Require(resource, authz.ActionWrite)).Patch("/{id}/status", mw.ErrorHandler(h.UpdateOrderStatus))
	})
}

type orderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []orderLineRequest `json:"items"`
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) error {
	var req createOrderRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}

	input := &dto.CreateOrderInput{
		UserID:        auth.GetUserID(r.Context()),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         make([]dto.OrderLine, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, dto.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	o, err := h.uc.CreateOrder(r.Context(), input)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) error {
	o, err := h.uc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.OrderFilters{
		SearchQuery: q.Get("q"),
		Status:      model.OrderStatus(q.Get("status")),
		Page:        handlerutils.QueryInt(r, "page", 1),
		PageSize:    handlerutils.QueryInt(r, "page_size", 0),
	}

	orders, count, err := h.uc.ListOrders(r.Context(), filters)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, handlerutils.Page[model.Order]{
		Items: orders,
		Total: count,
	})
}

func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) error {
	var req updateStatusRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}

	o, err := h.uc.UpdateOrderStatus(r.Context(), &dto.UpdateOrderStatusInput{
		ID:     chi.URLParam(r, "id"),
		Status: req.Status,
	})
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, o)
}
