package store

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type NewProduct struct {
	Name        string `validate:"required"`
	Description string
	Price       decimal.Decimal
	Quantity    int `validate:"gte=0"`
	Category    string
	ImageURL    *string
}

// ProductPatch updates only the non-nil fields.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *string
	ImageURL    *string
}

func checkPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return &validate.ValidationError{
			Message: "Price cannot be negative.",
			Fields:  map[string]string{"price": "must be at least 0"},
		}
	}
	return nil
}

func checkQuantity(q int) error {
	if q < 0 {
		return &validate.ValidationError{
			Message: "Quantity cannot be negative.",
			Fields:  map[string]string{"quantity": "must be at least 0"},
		}
	}
	return nil
}

func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneProducts(s.products)
}

func (s *Store) Product(id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.productIndexLocked(id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	p := s.products[i].Clone()
	return &p, nil
}

func (s *Store) productIndexLocked(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) AddProduct(ctx context.Context, in NewProduct) (*model.Product, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if err := checkPrice(in.Price); err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.now()
	p := model.Product{
		BaseModel:   model.BaseModel{ID: s.newID(), CreatedAt: now, UpdatedAt: now},
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    in.Category,
	}
	if in.ImageURL != nil {
		url := *in.ImageURL
		p.ImageURL = &url
	}
	s.products = append(s.products, p)
	s.recomputeLocked()
	s.mu.Unlock()
	p = p.Clone()

	s.logger.Debug("product added", zap.String("product_id", p.ID))
	s.notify(ctx, notify.Info("Product added", fmt.Sprintf("%s has been added to inventory.", p.Name)))
	return &p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*model.Product, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, &validate.ValidationError{
			Message: "Name is required",
			Fields:  map[string]string{"name": "required"},
		}
	}
	if patch.Price != nil {
		if err := checkPrice(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Quantity != nil {
		if err := checkQuantity(*patch.Quantity); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	i := s.productIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("update product %s: %w", id, ErrProductNotFound)
	}

	p := s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		url := *patch.ImageURL
		p.ImageURL = &url
	}
	p.UpdatedAt = s.now()
	s.products[i] = p
	s.recomputeLocked()
	s.mu.Unlock()
	p = p.Clone()

	s.notify(ctx, notify.Info("Product updated", "Product information has been updated."))
	return &p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.productIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete product %s: %w", id, ErrProductNotFound)
	}
	name := s.products[i].Name
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.recomputeLocked()
	s.mu.Unlock()

	s.logger.Debug("product deleted", zap.String("product_id", id))
	s.notify(ctx, notify.Info("Product deleted", fmt.Sprintf("%s has been removed from inventory.", name)))
	return nil
}
