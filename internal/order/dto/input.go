package dto

import "github.com/fekuna/omnipos-warehouse-service/internal/model"

type OrderLine struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	UserID        string
	CustomerName  string
	CustomerEmail string
	Items         []OrderLine
}

type UpdateOrderStatusInput struct {
	ID     string
	Status model.OrderStatus
}
