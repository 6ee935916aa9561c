package reconcile

import (
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func order(id, total string) model.Order {
	return model.Order{BaseModel: model.BaseModel{ID: id}, TotalAmount: d(total)}
}

func payment(orderID, amount string, status model.PaymentStatus) model.Payment {
	return model.Payment{OrderID: orderID, Amount: d(amount), Status: status}
}

func TestRemainingBalance_OnlyCompletedCount(t *testing.T) {
	o := order("o1", "100")
	payments := []model.Payment{
		payment("o1", "40", model.PaymentStatusCompleted),
		payment("o1", "30", model.PaymentStatusPending),
		payment("o1", "10", model.PaymentStatusFailed),
		payment("o2", "50", model.PaymentStatusCompleted),
	}

	assert.True(t, RemainingBalance(o, payments).Equal(d("60")))
}

func TestRemainingBalance_FlooredAtZero(t *testing.T) {
	o := order("o1", "100")
	payments := []model.Payment{payment("o1", "150", model.PaymentStatusCompleted)}

	assert.True(t, RemainingBalance(o, payments).IsZero())
}

func TestCheckAmount(t *testing.T) {
	o := order("o1", "100")
	payments := []model.Payment{payment("o1", "40", model.PaymentStatusCompleted)}

	assert.NoError(t, CheckAmount(o, payments, d("60.00")))
	assert.NoError(t, CheckAmount(o, payments, d("0.01")))

	err := CheckAmount(o, payments, d("60.01"))
	assert.ErrorIs(t, err, ErrExceedsBalance)
	assert.EqualError(t, err, "Payment amount cannot exceed the remaining balance of $60.00.")

	assert.ErrorIs(t, CheckAmount(o, payments, d("0")), ErrNonPositiveAmount)
	assert.ErrorIs(t, CheckAmount(o, payments, d("-5")), ErrNonPositiveAmount)
}

func TestEligible(t *testing.T) {
	orders := []model.Order{order("paid", "50"), order("open", "80"), order("partial", "30")}
	payments := []model.Payment{
		payment("paid", "50", model.PaymentStatusCompleted),
		payment("partial", "10", model.PaymentStatusCompleted),
		payment("open", "80", model.PaymentStatusPending),
	}

	got := Eligible(orders, payments)
	ids := make([]string, 0, len(got))
	for _, o := range got {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"open", "partial"}, ids)
}
