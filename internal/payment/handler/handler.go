package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment/dto"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

const resource = "payments"

type PaymentHandler struct {
	uc     payment.UseCase
	logger logger.ZapLogger
}

func NewPaymentHandler(uc payment.UseCase, log logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Route("/payments", func(r chi.Router) {
		r.With(mw.Require(resource, authz.ActionRead)).Get("/", mw.ErrorHandler(h.ListPayments))
		r.With(mw.Require(resource, authz.ActionWrite)).Post("/", mw.ErrorHandler(h.RecordPayment))
		r.With(mw.Require(resource, authz.ActionRead)).Get("/eligible-orders", mw.ErrorHandler(h.ListEligibleOrders))
		r.With(mw.Require(resource, authz.ActionRead)).Get("/balance/{orderID}", mw.ErrorHandler(h.GetBalance))
	})
}

type recordPaymentRequest struct {
	OrderID       string              `json:"order_id"`
	Amount        decimal.Decimal     `json:"amount"`
	Method        model.PaymentMethod `json:"method"`
	Status        model.PaymentStatus `json:"status"`
	TransactionID *string             `json:"transaction_id"`
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) error {
	var req recordPaymentRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}

	p, err := h.uc.RecordPayment(r.Context(), &dto.RecordPaymentInput{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusCreated, p)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.PaymentFilters{
		SearchQuery: q.Get("q"),
		OrderID:     q.Get("order_id"),
		Status:      model.PaymentStatus(q.Get("status")),
		Page:        handlerutils.QueryInt(r, "page", 1),
		PageSize:    handlerutils.QueryInt(r, "page_size", 0),
	}

	payments, count, err := h.uc.ListPayments(r.Context(), filters)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, handlerutils.Page[model.Payment]{
		Items: payments,
		Total: count,
	})
}

func (h *PaymentHandler) ListEligibleOrders(w http.ResponseWriter, r *http.Request) error {
	orders, err := h.uc.ListEligibleOrders(r.Context())
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, orders)
}

func (h *PaymentHandler) GetBalance(w http.ResponseWriter, r *http.Request) error {
	b, err := h.uc.GetBalance(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, b)
}
