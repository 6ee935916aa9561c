package expense

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/expense/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type UseCase interface {
	RecordExpense(ctx context.Context, input *dto.RecordExpenseInput) (*model.Expense, error)
	ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, int, error)
	Summary(ctx context.Context) (*dto.Summary, error)
}
