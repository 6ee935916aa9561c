// Package store is the single owner of every in-memory collection. All
// mutations go through it; each successful mutation recomputes the
// dashboard stats before the lock is released and then emits one
// notification.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/fekuna/omnipos-warehouse-service/internal/stats"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

type Store struct {
	mu       sync.RWMutex
	users    []model.User
	products []model.Product
	orders   []model.Order
	payments []model.Payment
	expenses []model.Expense
	stats    model.DashboardStats

	now      func() time.Time
	newID    func() string
	notifier notify.Notifier
	logger   logger.ZapLogger
}

func New(log logger.ZapLogger, opts ...Option) *Store {
	s := &Store{
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		notifier: notify.Nop{},
		logger:   log,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.stats = stats.Compute(model.Snapshot{})
	return s
}

// Load replaces every collection with a copy of snap.
func (s *Store) Load(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]model.User(nil), snap.Users...)
	s.products = model.CloneProducts(snap.Products)
	s.orders = make([]model.Order, 0, len(snap.Orders))
	for _, o := range snap.Orders {
		s.orders = append(s.orders, o.Clone())
	}
	s.payments = model.ClonePayments(snap.Payments)
	s.expenses = append([]model.Expense(nil), snap.Expenses...)
	s.recomputeLocked()
}

func (s *Store) recomputeLocked() {
	s.stats = stats.Compute(model.Snapshot{
		Users:    s.users,
		Products: s.products,
		Orders:   s.orders,
		Payments: s.payments,
		Expenses: s.expenses,
	})
}

func (s *Store) notify(ctx context.Context, n notify.Notification) {
	n.CreatedAt = s.now()
	s.notifier.Notify(ctx, n)
}

// Stats returns the stats computed after the last mutation.
func (s *Store) Stats() model.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Snapshot returns deep copies of every collection.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := model.Snapshot{
		Users:    append([]model.User(nil), s.users...),
		Products: model.CloneProducts(s.products),
		Orders:   make([]model.Order, 0, len(s.orders)),
		Payments: model.ClonePayments(s.payments),
		Expenses: append([]model.Expense(nil), s.expenses...),
	}
	for _, o := range s.orders {
		snap.Orders = append(snap.Orders, o.Clone())
	}
	return snap
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

func (s *Store) User(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// UserByEmail matches case-insensitively.
func (s *Store) UserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}
