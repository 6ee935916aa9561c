package repository

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/fulfillment"
	"github.com/fekuna/omnipos-warehouse-service/internal/listing"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/order/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(s *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: s}
}

func (r *MemoryRepository) Create(ctx context.Context, req fulfillment.Request) (*model.Order, error) {
	return r.Store.AddOrder(ctx, req)
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Order, error) {
	return r.Store.Order(id)
}

// FindAll keeps insertion order, matching how orders were recorded.
func (r *MemoryRepository) FindAll(_ context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	orders := []model.Order{}
	for _, o := range r.Store.Orders() {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if !listing.Matches(f.SearchQuery, o.CustomerName, o.CustomerEmail, o.ID) {
			continue
		}
		orders = append(orders, o)
	}

	count := len(orders)
	return listing.Paginate(orders, f.Page, f.PageSize), count, nil
}

func (r *MemoryRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return r.Store.UpdateOrderStatus(ctx, id, status)
}
