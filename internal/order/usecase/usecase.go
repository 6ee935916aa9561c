package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/fulfillment"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/order"
	"github.com/fekuna/omnipos-warehouse-service/internal/order/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo   order.Repository
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: log,
	}
}

// CreateOrder prices the lines at current product prices and records a
// pending order. Stock is checked and decremented atomically by the store.
func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	req := fulfillment.Request{
		UserID:        input.UserID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		Lines:         make([]fulfillment.Line, 0, len(input.Items)),
	}
	for _, item := range input.Items {
		req.Lines = append(req.Lines, fulfillment.Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	o, err := uc.repo.Create(ctx, req)
	if err != nil {
		if validate.IsValidation(err) {
			uc.logger.Warn("order rejected", zap.String("customer_email", req.CustomerEmail), zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("customer_email", o.CustomerEmail),
		zap.String("total", o.TotalAmount.StringFixed(2)),
	)
	return o, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *orderUseCase) UpdateOrderStatus(ctx context.Context, input *dto.UpdateOrderStatusInput) (*model.Order, error) {
	o, err := uc.repo.UpdateStatus(ctx, input.ID, input.Status)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated", zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
	return o, nil
}
