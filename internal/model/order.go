package model

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	BaseModel     `yaml:",inline"`
	UserID        string          `json:"user_id" yaml:"user_id"`
	CustomerName  string          `json:"customer_name" yaml:"customer_name"`
	CustomerEmail string          `json:"customer_email" yaml:"customer_email"`
	Status        OrderStatus     `json:"status" yaml:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount" yaml:"total_amount"`
	Items         []OrderItem     `json:"items" yaml:"items"`
}

// OrderItem snapshots the product name and unit price at order time.
type OrderItem struct {
	ID          string          `json:"id" yaml:"id"`
	OrderID     string          `json:"order_id" yaml:"order_id"`
	ProductID   string          `json:"product_id" yaml:"product_id"`
	ProductName string          `json:"product_name" yaml:"product_name"`
	Quantity    int             `json:"quantity" yaml:"quantity"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone returns a deep copy so callers never share the items slice.
func (o Order) Clone() Order {
	c := o
	c.Items = append([]OrderItem(nil), o.Items...)
	return c
}
