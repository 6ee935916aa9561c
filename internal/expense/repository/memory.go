package repository

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/expense/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/listing"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(s *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: s}
}

func (r *MemoryRepository) Create(ctx context.Context, input store.NewExpense) (*model.Expense, error) {
	return r.Store.AddExpense(ctx, input)
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.ExpenseFilters) ([]model.Expense, int, error) {
	expenses := []model.Expense{}
	for _, e := range r.Store.Expenses() {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if !listing.Matches(f.SearchQuery, e.Description, string(e.Category)) {
			continue
		}
		expenses = append(expenses, e)
	}

	count := len(expenses)
	return listing.Paginate(expenses, f.Page, f.PageSize), count, nil
}
