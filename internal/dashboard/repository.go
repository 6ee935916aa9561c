package dashboard

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
)

type Repository interface {
	Stats(ctx context.Context) (model.DashboardStats, error)
	Snapshot(ctx context.Context) (model.Snapshot, error)
}
