package repository

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(s *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: s}
}

func (r *MemoryRepository) Stats(_ context.Context) (model.DashboardStats, error) {
	return r.Store.Stats(), nil
}

func (r *MemoryRepository) Snapshot(_ context.Context) (model.Snapshot, error) {
	return r.Store.Snapshot(), nil
}
