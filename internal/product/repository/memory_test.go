package repository

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo() *MemoryRepository {
	s := store.New(logger.NewNop())
	s.Load(model.Snapshot{Products: []model.Product{
		{BaseModel: model.BaseModel{ID: "1"}, Name: "Ergonomic Chair", Price: decimal.RequireFromString("199.99"), Quantity: 45, Category: "Furniture"},
		{BaseModel: model.BaseModel{ID: "2"}, Name: "Desk Lamp", Price: decimal.RequireFromString("49.99"), Quantity: 100, Category: "Lighting"},
		{BaseModel: model.BaseModel{ID: "3"}, Name: "Standing Desk", Price: decimal.RequireFromString("349.99"), Quantity: 0, Category: "Furniture"},
	}})
	return NewMemoryRepository(s)
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFindAll_Filters(t *testing.T) {
	repo := newRepo()
	ctx := context.Background()

	tests := []struct {
		name    string
		filters dto.ProductFilters
		want    []string
	}{
		{"all", dto.ProductFilters{}, []string{"1", "2", "3"}},
		{"search", dto.ProductFilters{SearchQuery: "desk"}, []string{"2", "3"}},
		{"category", dto.ProductFilters{Category: "furniture"}, []string{"1", "3"}},
		{"low stock", dto.ProductFilters{LowStock: true}, []string{"1", "3"}},
		{"in stock", dto.ProductFilters{InStock: true}, []string{"1", "2"}},
		{"price desc", dto.ProductFilters{SortBy: "price", SortOrder: "desc"}, []string{"3", "1", "2"}},
		{"name asc", dto.ProductFilters{SortBy: "name"}, []string{"2", "1", "3"}},
		{"paged", dto.ProductFilters{SortBy: "quantity", Page: 2, PageSize: 2}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count, err := repo.FindAll(ctx, &tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
			if tt.filters.PageSize == 0 {
				assert.Equal(t, len(tt.want), count)
			}
		})
	}
}

func TestFindAll_CountIgnoresPaging(t *testing.T) {
	_, count, err := newRepo().FindAll(context.Background(), &dto.ProductFilters{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
