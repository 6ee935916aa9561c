package dto

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/stats"
	"github.com/shopspring/decimal"
)

type Dashboard struct {
	Stats              model.DashboardStats  `json:"stats"`
	NetProfit          decimal.Decimal       `json:"net_profit"`
	ActiveOrders       int                   `json:"active_orders"`
	OrdersByStatus     []stats.StatusCount   `json:"orders_by_status"`
	ProductsByCategory []stats.CategoryCount `json:"products_by_category"`
	ExpensesByCategory []stats.CategoryTotal `json:"expenses_by_category"`
	RecentOrders       []model.Order         `json:"recent_orders"`
}
