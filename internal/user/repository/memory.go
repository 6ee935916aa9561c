package repository

import (
	"context"

	"github.com/fekuna/omnipos-warehouse-service/internal/listing"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/internal/user/dto"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(s *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: s}
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	return r.Store.User(id)
}

func (r *MemoryRepository) FindAll(_ context.Context, f *dto.UserFilters) ([]model.User, int, error) {
	users := []model.User{}
	for _, u := range r.Store.Users() {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if !listing.Matches(f.SearchQuery, u.Name, u.Email, string(u.Role)) {
			continue
		}
		users = append(users, u)
	}

	count := len(users)
	return listing.Paginate(users, f.Page, f.PageSize), count, nil
}
