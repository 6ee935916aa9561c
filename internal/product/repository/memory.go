package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-warehouse-service/internal/listing"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/product/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(s *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: s}
}

func (r *MemoryRepository) Create(ctx context.Context, in store.NewProduct) (*model.Product, error) {
	return r.Store.AddProduct(ctx, in)
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	return r.Store.Product(id)
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	for _, p := range r.Store.Products() {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.LowStock && !p.IsLowStock() {
			continue
		}
		if f.InStock && p.Quantity <= 0 {
			continue
		}
		if !listing.Matches(f.SearchQuery, p.Name, p.Description, p.Category) {
			continue
		}
		products = append(products, p)
	}

	// Unsorted requests keep insertion order.
	if f.SortBy != "" {
		desc := listing.Descending(f.SortOrder)
		less := func(i, j int) bool {
			a, b := products[i], products[j]
			switch f.SortBy {
			case "name":
				return strings.ToLower(a.Name) < strings.ToLower(b.Name)
			case "price":
				return a.Price.LessThan(b.Price)
			case "quantity":
				return a.Quantity < b.Quantity
			default:
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		sort.SliceStable(products, func(i, j int) bool {
			if desc {
				return less(j, i)
			}
			return less(i, j)
		})
	}

	count := len(products)
	return listing.Paginate(products, f.Page, f.PageSize), count, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch store.ProductPatch) (*model.Product, error) {
	return r.Store.UpdateProduct(ctx, id, patch)
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	return r.Store.DeleteProduct(ctx, id)
}
