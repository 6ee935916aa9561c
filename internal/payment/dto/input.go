package dto

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
)

type RecordPaymentInput struct {
	OrderID       string
	Amount        decimal.Decimal
	Method        model.PaymentMethod
	Status        model.PaymentStatus // empty means completed
	TransactionID *string
}
