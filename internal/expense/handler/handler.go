package handler

import (
	"net/http"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/authz"
	"github.com/fekuna/omnipos-warehouse-service/internal/expense"
	"github.com/fekuna/omnipos-warehouse-service/internal/expense/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/handlerutils"
	"github.com/fekuna/omnipos-warehouse-service/internal/middleware"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/servererrors"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

const resource = "expenses"

type ExpenseHandler struct {
	uc     expense.UseCase
	logger logger.ZapLogger
}

func NewExpenseHandler(uc expense.UseCase, log logger.ZapLogger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ExpenseHandler) RegisterRoutes(r chi.Router, mw *middleware.Middleware) {
	r.Route("/expenses", func(r chi.Router) {
		r.With(mw.Require(resource, authz.ActionRead)).Get("/", mw.ErrorHandler(h.ListExpenses))
		r.With(mw.Require(resource, authz.ActionWrite)).Post("/", mw.ErrorHandler(h.RecordExpense))
		r.With(mw.Require(resource, authz.ActionRead)).Get("/summary", mw.ErrorHandler(h.Summary))
	})
}

type recordExpenseRequest struct {
	Description string                `json:"description"`
	Amount      decimal.Decimal       `json:"amount"`
	Category    model.ExpenseCategory `json:"category"`
	Date        string                `json:"date"` // YYYY-MM-DD or RFC3339; empty means today
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, servererrors.BadRequest("date must be YYYY-MM-DD or RFC3339")
	}
	return t, nil
}

func (h *ExpenseHandler) RecordExpense(w http.ResponseWriter, r *http.Request) error {
	var req recordExpenseRequest
	if err := handlerutils.DecodeJSON(r, &req); err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	e, err := h.uc.RecordExpense(r.Context(), &dto.RecordExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
	})
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusCreated, e)
}

func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	filters := &dto.ExpenseFilters{
		SearchQuery: q.Get("q"),
		Category:    model.ExpenseCategory(q.Get("category")),
		Page:        handlerutils.QueryInt(r, "page", 1),
		PageSize:    handlerutils.QueryInt(r, "page_size", 0),
	}

	expenses, count, err := h.uc.ListExpenses(r.Context(), filters)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(w, http.StatusOK, handlerutils.Page[model.Expense]{
		Items: expenses,
		Total: count,
	})
}

func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) error {
	s, err := h.uc.Summary(r.Context())
	if err != nil {
		return err
	}
	return handlerutils.WriteJSON(w, http.StatusOK, s)
}
