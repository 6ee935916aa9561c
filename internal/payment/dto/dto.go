package dto

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
)

type PaymentFilters struct {
	SearchQuery string // payment id, order id, method
	OrderID     string
	Status      model.PaymentStatus
	Page        int
	PageSize    int
}

// Balance is what the record-payment form pre-fills from.
type Balance struct {
	OrderID         string          `json:"order_id"`
	Remaining       decimal.Decimal `json:"remaining"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
}
