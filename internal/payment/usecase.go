package payment

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment/dto"
)

type UseCase interface {
	RecordPayment(ctx context.Context, input *dto.RecordPaymentInput) (*model.Payment, error)
	ListPayments(ctx context.Context, filters *dto.PaymentFilters) ([]model.Payment, int, error)
	GetBalance(ctx context.Context, orderID string) (*dto.Balance, error)
	ListEligibleOrders(ctx context.Context) ([]model.Order, error)
}
