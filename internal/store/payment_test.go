package store

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/reconcile"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withOrder(t *testing.T, total string) (*Store, *recorder) {
	t.Helper()
	s, rec := newTestStore(t)
	snap := s.Snapshot()
	snap.Orders = []model.Order{{
		BaseModel:     model.BaseModel{ID: "o1"},
		CustomerName:  "Alex",
		CustomerEmail: "alex@example.com",
		Status:        model.OrderStatusPending,
		TotalAmount:   d(total),
	}}
	s.Load(snap)
	return s, rec
}

func pay(orderID, amount string) NewPayment {
	return NewPayment{OrderID: orderID, Amount: d(amount), Method: model.PaymentMethodCash, Status: model.PaymentStatusCompleted}
}

func TestAddPayment_Reconciliation(t *testing.T) {
	s, rec := withOrder(t, "100")
	ctx := context.Background()

	_, err := s.AddPayment(ctx, pay("o1", "40"))
	require.NoError(t, err)

	rem, err := s.RemainingBalance("o1")
	require.NoError(t, err)
	assert.True(t, rem.Equal(d("60")))

	_, err = s.AddPayment(ctx, pay("o1", "60.01"))
	assert.ErrorIs(t, err, reconcile.ErrExceedsBalance)

	_, err = s.AddPayment(ctx, pay("o1", "60.00"))
	require.NoError(t, err)

	rem, err = s.RemainingBalance("o1")
	require.NoError(t, err)
	assert.True(t, rem.IsZero())
	assert.Empty(t, s.EligibleOrders())

	assert.True(t, s.Stats().MonthlyRevenue.Equal(d("100")))
	assert.Equal(t, "Payment of $60.00 has been recorded.", rec.last().Description)
}

func TestAddPayment_PendingDoesNotReduceBalance(t *testing.T) {
	s, _ := withOrder(t, "100")
	in := pay("o1", "100")
	in.Status = model.PaymentStatusPending

	_, err := s.AddPayment(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, s.EligibleOrders(), 1)
	assert.True(t, s.Stats().MonthlyRevenue.IsZero())
}

func TestAddPayment_Errors(t *testing.T) {
	s, _ := withOrder(t, "100")
	ctx := context.Background()

	_, err := s.AddPayment(ctx, pay("missing", "1"))
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = s.AddPayment(ctx, pay("o1", "0"))
	assert.ErrorIs(t, err, reconcile.ErrNonPositiveAmount)

	bad := pay("o1", "1")
	bad.Method = "cheque"
	_, err = s.AddPayment(ctx, bad)
	assert.True(t, validate.IsValidation(err))

	assert.Empty(t, s.Payments())
}

func TestAddExpense(t *testing.T) {
	s, rec := newTestStore(t)
	ctx := context.Background()

	e, err := s.AddExpense(ctx, NewExpense{Description: "Rent", Amount: d("2500"), Category: model.ExpenseCategoryRent})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, e.Date)
	assert.True(t, s.Stats().MonthlyExpenses.Equal(d("2500")))
	assert.Equal(t, "Rent expense of $2500.00 has been recorded.", rec.last().Description)

	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	e, err = s.AddExpense(ctx, NewExpense{Description: "Power", Amount: d("1"), Category: model.ExpenseCategoryUtilities, Date: date})
	require.NoError(t, err)
	assert.Equal(t, date, e.Date)

	_, err = s.AddExpense(ctx, NewExpense{Description: "Free", Amount: d("0"), Category: model.ExpenseCategoryOther})
	assert.True(t, validate.IsValidation(err))

	_, err = s.AddExpense(ctx, NewExpense{Description: "Odd", Amount: d("5"), Category: "snacks"})
	assert.True(t, validate.IsValidation(err))

	assert.Len(t, s.Expenses(), 2)
}

func TestUserByEmail_IgnoresCase(t *testing.T) {
	s, _ := newTestStore(t)

	u, err := s.UserByEmail(" jane@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = s.UserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
