package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/expense"
	"github.com/fekuna/omnipos-warehouse-service/internal/expense/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/stats"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type expenseUseCase struct {
	repo   expense.Repository
	logger logger.ZapLogger
}

func NewExpenseUseCase(repo expense.Repository, log logger.ZapLogger) expense.UseCase {
	return &expenseUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *expenseUseCase) RecordExpense(ctx context.Context, input *dto.RecordExpenseInput) (*model.Expense, error) {
	e, err := uc.repo.Create(ctx, store.NewExpense{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("expense recorded",
		zap.String("expense_id", e.ID),
		zap.String("category", string(e.Category)),
		zap.String("amount", e.Amount.StringFixed(2)),
	)
	return e, nil
}

func (uc *expenseUseCase) ListExpenses(ctx context.Context, filters *dto.ExpenseFilters) ([]model.Expense, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *expenseUseCase) Summary(ctx context.Context) (*dto.Summary, error) {
	expenses, _, err := uc.repo.FindAll(ctx, &dto.ExpenseFilters{})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return &dto.Summary{
		Total:      total,
		Categories: stats.ExpensesByCategory(expenses),
	}, nil
}
