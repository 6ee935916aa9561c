package store

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/fekuna/omnipos-warehouse-service/internal/reconcile"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/shopspring/decimal"
)

type NewPayment struct {
	OrderID       string              `validate:"required"`
	Amount        decimal.Decimal
	Method        model.PaymentMethod `validate:"required,oneof=credit_card bank_transfer cash other"`
	Status        model.PaymentStatus `validate:"required,oneof=pending completed failed refunded"`
	TransactionID *string
}

func (s *Store) Payments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ClonePayments(s.payments)
}

// AddPayment records a payment after checking it against the order's
// remaining balance under the write lock.
func (s *Store) AddPayment(ctx context.Context, in NewPayment) (*model.Payment, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	i := s.orderIndexLocked(in.OrderID)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("add payment for order %s: %w", in.OrderID, ErrOrderNotFound)
	}
	if err := reconcile.CheckAmount(s.orders[i], s.payments, in.Amount); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	p := model.Payment{
		ID:            s.newID(),
		OrderID:       in.OrderID,
		Amount:        in.Amount,
		Method:        in.Method,
		Status:        in.Status,
		CreatedAt:     s.now(),
	}
	if in.TransactionID != nil {
		id := *in.TransactionID
		p.TransactionID = &id
	}
	s.payments = append(s.payments, p)
	s.recomputeLocked()
	s.mu.Unlock()
	p = p.Clone()

	s.notify(ctx, notify.Info("Payment recorded", fmt.Sprintf("Payment of $%s has been recorded.", p.Amount.StringFixed(2))))
	return &p, nil
}

// RemainingBalance is what is still owed on orderID.
func (s *Store) RemainingBalance(orderID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.orderIndexLocked(orderID)
	if i < 0 {
		return decimal.Zero, ErrOrderNotFound
	}
	return reconcile.RemainingBalance(s.orders[i], s.payments), nil
}

// EligibleOrders lists orders that can still take a payment.
func (s *Store) EligibleOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eligible := reconcile.Eligible(s.orders, s.payments)
	out := make([]model.Order, 0, len(eligible))
	for _, o := range eligible {
		out = append(out, o.Clone())
	}
	return out
}
