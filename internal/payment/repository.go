package payment

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, input store.NewPayment) (*model.Payment, error)
	FindAll(ctx context.Context, filters *dto.PaymentFilters) ([]model.Payment, int, error)
	RemainingBalance(ctx context.Context, orderID string) (decimal.Decimal, error)
	EligibleOrders(ctx context.Context) ([]model.Order, error)
}
