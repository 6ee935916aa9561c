package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-warehouse-service/internal/fulfillment"
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/order/dto"
	"github.com/fekuna/omnipos-warehouse-service/internal/order/repository"
	"github.com/fekuna/omnipos-warehouse-service/internal/store"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) (*orderUseCase, *store.Store) {
	t.Helper()
	s := store.New(logger.NewNop())
	s.Load(model.Snapshot{Products: []model.Product{
		{BaseModel: model.BaseModel{ID: "p1"}, Name: "Lamp", Price: decimal.RequireFromString("19.99"), Quantity: 10},
	}})
	uc := NewOrderUseCase(repository.NewMemoryRepository(s), logger.NewNop()).(*orderUseCase)
	return uc, s
}

func TestCreateOrder_TrimsCustomerFields(t *testing.T) {
	uc, _ := newUseCase(t)

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		UserID:        "u1",
		CustomerName:  "  Alex  ",
		CustomerEmail: " alex@example.com ",
		Items:         []dto.OrderLine{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", o.CustomerName)
	assert.Equal(t, "alex@example.com", o.CustomerEmail)
	assert.Equal(t, "u1", o.UserID)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("59.97")))
}

func TestCreateOrder_PropagatesStockErrors(t *testing.T) {
	uc, s := newUseCase(t)

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName:  "Alex",
		CustomerEmail: "alex@example.com",
		Items:         []dto.OrderLine{{ProductID: "p1", Quantity: 11}},
	})
	assert.ErrorIs(t, err, fulfillment.ErrInsufficientStock)
	assert.Empty(t, s.Orders())
}

func TestListOrders_SearchAndStatus(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	for _, email := range []string{"alex@example.com", "sam@example.org"} {
		_, err := uc.CreateOrder(ctx, &dto.CreateOrderInput{
			CustomerName:  "Customer",
			CustomerEmail: email,
			Items:         []dto.OrderLine{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)
	}

	orders, count, err := uc.ListOrders(ctx, &dto.OrderFilters{SearchQuery: ".org"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "sam@example.org", orders[0].CustomerEmail)

	_, err = uc.UpdateOrderStatus(ctx, &dto.UpdateOrderStatusInput{ID: orders[0].ID, Status: model.OrderStatusDelivered})
	require.NoError(t, err)

	_, count, err = uc.ListOrders(ctx, &dto.OrderFilters{Status: model.OrderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
