package usecase

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard"
	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/stats"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
)

const recentOrdersLimit = 5

type dashboardUseCase struct {
	repo   dashboard.Repository
	logger logger.ZapLogger
}

func NewDashboardUseCase(repo dashboard.Repository, log logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{
		repo:   repo,
		logger: log,
	}
}

// GetDashboard reads the eagerly maintained stats and derives the
// breakdowns from the same snapshot.
func (uc *dashboardUseCase) GetDashboard(ctx context.Context) (*dto.Dashboard, error) {
	st, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.Dashboard{
		Stats:              st,
		NetProfit:          stats.NetProfit(st),
		ActiveOrders:       stats.ActiveOrders(snap.Orders),
		OrdersByStatus:     stats.OrdersByStatus(snap.Orders),
		ProductsByCategory: stats.ProductsByCategory(snap.Products),
		ExpensesByCategory: stats.ExpensesByCategory(snap.Expenses),
		RecentOrders:       stats.RecentOrders(snap.Orders, recentOrdersLimit),
	}, nil
}
