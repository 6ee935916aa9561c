package expense

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/expense/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type Repository interface {
	Create(ctx context.Context, input store.NewExpense) (*model.Expense, error)
	FindAll(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, int, error)
}
