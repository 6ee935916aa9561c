package store

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/shopspring/decimal"
)

type NewExpense struct {
	Description string `validate:"required"`
	Amount      decimal.Decimal
	Category    model.ExpenseCategory `validate:"required,oneof=rent utilities maintenance staff equipment other"`
	Date        time.Time // zero means today
}

func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Expense(nil), s.expenses...)
}

func (s *Store) AddExpense(ctx context.Context, in NewExpense) (*model.Expense, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, &validate.ValidationError{
			Message: "Expense amount must be greater than 0.",
			Fields:  map[string]string{"amount": "must be greater than 0"},
		}
	}

	s.mu.Lock()
	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	e := model.Expense{
		ID:          s.newID(),
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        date,
		CreatedAt:   now,
	}
	s.expenses = append(s.expenses, e)
	s.recomputeLocked()
	s.mu.Unlock()

	s.notify(ctx, notify.Info("Expense recorded",
		fmt.Sprintf("%s expense of $%s has been recorded.", e.Description, e.Amount.StringFixed(2))))
	return &e, nil
}
