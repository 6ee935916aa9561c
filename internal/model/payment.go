package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID            string          `json:"id" yaml:"id"`
	OrderID       string          `json:"order_id" yaml:"order_id"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Method        PaymentMethod   `json:"method" yaml:"method"`
	Status        PaymentStatus   `json:"status" yaml:"status"`
	TransactionID *string         `json:"transaction_id,omitempty" yaml:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at" yaml:"created_at"`
}

func (p Payment) Clone() Payment {
	c := p
	if p.TransactionID != nil {
		id := *p.TransactionID
		c.TransactionID = &id
	}
	return c
}

func ClonePayments(in []Payment) []Payment {
	out := make([]Payment, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}
