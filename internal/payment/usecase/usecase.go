package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type paymentUseCase struct {
	repo   payment.Repository
	logger logger.ZapLogger
}

func NewPaymentUseCase(repo payment.Repository, log logger.ZapLogger) payment.UseCase {
	return &paymentUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *paymentUseCase) RecordPayment(ctx context.Context, input *dto.RecordPaymentInput) (*model.Payment, error) {
	status := input.Status
	if status == "" {
		status = model.PaymentStatusCompleted
	}

	var txID *string
	if input.TransactionID != nil {
		if v := strings.TrimSpace(*input.TransactionID); v != "" {
			txID = &v
		}
	}

	p, err := uc.repo.Create(ctx, store.NewPayment{
		OrderID:       input.OrderID,
		Amount:        input.Amount,
		Method:        input.Method,
		Status:        status,
		TransactionID: txID,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment recorded",
		zap.String("payment_id", p.ID),
		zap.String("order_id", p.OrderID),
		zap.String("amount", p.Amount.StringFixed(2)),
		zap.String("status", string(p.Status)),
	)
	return p, nil
}

func (uc *paymentUseCase) ListPayments(ctx context.Context, filters *dto.PaymentFilters) ([]model.Payment, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *paymentUseCase) GetBalance(ctx context.Context, orderID string) (*dto.Balance, error) {
	remaining, err := uc.repo.RemainingBalance(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &dto.Balance{
		OrderID:         orderID,
		Remaining:       remaining,
		SuggestedAmount: remaining.Round(2),
	}, nil
}

func (uc *paymentUseCase) ListEligibleOrders(ctx context.Context) ([]model.Order, error) {
	return uc.repo.EligibleOrders(ctx)
}
