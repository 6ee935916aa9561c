package dashboard

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/dashboard/dto"
)

type UseCase interface {
	GetDashboard(ctx context.Context) (*dto.Dashboard, error)
}
