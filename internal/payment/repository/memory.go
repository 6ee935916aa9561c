package repository

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/listing"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/payment/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/shopspring/decimal"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(s *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: s}
}

func (r *MemoryRepository) Create(ctx context.Context, input store.NewPayment) (*model.Payment, error) {
	return r.Store.AddPayment(ctx, input)
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.PaymentFilters) ([]model.Payment, int, error) {
	payments := []model.Payment{}
	for _, p := range r.Store.Payments() {
		if f.OrderID != "" && p.OrderID != f.OrderID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		method := strings.ReplaceAll(string(p.Method), "_", " ")
		if !listing.Matches(f.SearchQuery, p.ID, p.OrderID, method) {
			continue
		}
		payments = append(payments, p)
	}

	count := len(payments)
	return listing.Paginate(payments, f.Page, f.PageSize), count, nil
}

func (r *MemoryRepository) RemainingBalance(_ context.Context, orderID string) (decimal.Decimal, error) {
	return r.Store.RemainingBalance(orderID)
}

func (r *MemoryRepository) EligibleOrders(_ context.Context) ([]model.Order, error) {
	return r.Store.EligibleOrders(), nil
}
