// Package reconcile computes what is still owed on an order.
package reconcile

import (
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	ErrExceedsBalance    = errors.New("payment amount exceeds remaining balance")
)

// Paid sums the completed payments recorded against orderID.
func Paid(orderID string, payments []model.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.OrderID == orderID && p.Status == model.PaymentStatusCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// RemainingBalance is the order total minus completed payments, floored at zero.
func RemainingBalance(order model.Order, payments []model.Payment) decimal.Decimal {
	rem := order.TotalAmount.Sub(Paid(order.ID, payments))
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// CheckAmount rejects amounts that are not positive or exceed the remaining balance.
func CheckAmount(order model.Order, payments []model.Payment, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &validate.ValidationError{
			Message: "Payment amount must be greater than 0.",
			Fields:  map[string]string{"amount": "must be greater than 0"},
			Err:     ErrNonPositiveAmount,
		}
	}

	rem := RemainingBalance(order, payments)
	if amount.GreaterThan(rem) {
		return &validate.ValidationError{
			Message: fmt.Sprintf("Payment amount cannot exceed the remaining balance of $%s.", rem.StringFixed(2)),
			Fields:  map[string]string{"amount": "exceeds remaining balance"},
			Err:     ErrExceedsBalance,
		}
	}
	return nil
}

// Eligible returns the orders that still have something left to pay, in input order.
func Eligible(orders []model.Order, payments []model.Payment) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if RemainingBalance(o, payments).IsPositive() {
			out = append(out, o)
		}
	}
	return out
}
