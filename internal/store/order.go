package store

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/fulfillment"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"go.uber.org/zap"
)

func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (s *Store) Order(id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.orderIndexLocked(id)
	if i < 0 {
		return nil, ErrOrderNotFound
	}
	o := s.orders[i].Clone()
	return &o, nil
}

func (s *Store) orderIndexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// AddOrder checks the request against current stock, records a pending
// order and decrements the ordered quantities. The check and the
// decrement happen under one lock, so quantities never go negative and a
// rejected request leaves the store untouched.
func (s *Store) AddOrder(ctx context.Context, req fulfillment.Request) (*model.Order, error) {
	s.mu.Lock()
	plan, err := fulfillment.Build(s.products, req)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	// Build guarantees every decrement fits; re-check before touching anything.
	idx := make([]int, len(plan.Decrements))
	for n, d := range plan.Decrements {
		i := s.productIndexLocked(d.ProductID)
		if i < 0 || d.Quantity < 0 || d.Quantity > s.products[i].Quantity {
			s.mu.Unlock()
			return nil, &validate.ValidationError{
				Message: "Some items exceed available inventory.",
				Err:     fulfillment.ErrInsufficientStock,
			}
		}
		idx[n] = i
	}

	now := s.now()
	order := model.Order{
		BaseModel:     model.BaseModel{ID: s.newID(), CreatedAt: now, UpdatedAt: now},
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        model.OrderStatusPending,
		TotalAmount:   plan.Total,
		Items:         make([]model.OrderItem, 0, len(plan.Items)),
	}
	for _, item := range plan.Items {
		item.ID = s.newID()
		item.OrderID = order.ID
		order.Items = append(order.Items, item)
	}

	for n, d := range plan.Decrements {
		i := idx[n]
		s.products[i].Quantity -= d.Quantity
		s.products[i].UpdatedAt = now
	}
	s.orders = append(s.orders, order)
	s.recomputeLocked()
	out := order.Clone()
	s.mu.Unlock()

	s.logger.Info("order created",
		zap.String("order_id", out.ID),
		zap.String("total", out.TotalAmount.StringFixed(2)),
		zap.Int("items", len(out.Items)),
	)
	s.notify(ctx, notify.Info("Order created", fmt.Sprintf("Order #%s has been created.", out.ID)))
	return &out, nil
}

// UpdateOrderStatus accepts any valid status from any status.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, &validate.ValidationError{
			Message: fmt.Sprintf("Invalid order status %q.", status),
			Fields:  map[string]string{"status": "must be one of pending, processing, shipped, delivered, cancelled"},
		}
	}

	s.mu.Lock()
	i := s.orderIndexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("update order %s: %w", id, ErrOrderNotFound)
	}
	s.orders[i].Status = status
	s.orders[i].UpdatedAt = s.now()
	s.recomputeLocked()
	out := s.orders[i].Clone()
	s.mu.Unlock()

	s.notify(ctx, notify.Info("Order updated", fmt.Sprintf("Order status has been updated to %s.", status)))
	return &out, nil
}
