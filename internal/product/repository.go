package product

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type Repository interface {
	Create(ctx context.Context, in store.NewProduct) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, id string, patch store.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
