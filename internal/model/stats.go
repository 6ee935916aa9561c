package model

import "github.com/shopspring/decimal"

// DashboardStats is derived from the store and never mutated directly.
// The Monthly* fields are all-time sums; see DESIGN.md.
type DashboardStats struct {
	TotalProducts    int             `json:"total_products"`
	LowStockProducts int             `json:"low_stock_products"`
	TotalOrders      int             `json:"total_orders"`
	PendingOrders    int             `json:"pending_orders"`
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
}

// Snapshot is a point-in-time copy of every collection in the store.
type Snapshot struct {
	Users    []User
	Products []Product
	Orders   []Order
	Payments []Payment
	Expenses []Expense
}
