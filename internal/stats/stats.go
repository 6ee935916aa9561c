// Package stats derives dashboard aggregates from a store snapshot.
package stats

import (
	"sort"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
)

// Compute is a pure function of the snapshot. Revenue and expenses are
// all-time sums despite the Monthly names.
func Compute(s model.Snapshot) model.DashboardStats {
	st := model.DashboardStats{
		TotalProducts:   len(s.Products),
		TotalOrders:     len(s.Orders),
		MonthlyRevenue:  decimal.Zero,
		MonthlyExpenses: decimal.Zero,
	}

	for _, p := range s.Products {
		if p.IsLowStock() {
			st.LowStockProducts++
		}
	}
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending {
			st.PendingOrders++
		}
	}
	for _, p := range s.Payments {
		if p.Status == model.PaymentStatusCompleted {
			st.MonthlyRevenue = st.MonthlyRevenue.Add(p.Amount)
		}
	}
	for _, e := range s.Expenses {
		st.MonthlyExpenses = st.MonthlyExpenses.Add(e.Amount)
	}

	return st
}

type StatusCount struct {
	Status model.OrderStatus `json:"status"`
	Count  int               `json:"count"`
}

// OrdersByStatus counts orders per status in display order, dropping zero counts.
func OrdersByStatus(orders []model.Order) []StatusCount {
	counts := make(map[model.OrderStatus]int, len(model.OrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}

	out := []StatusCount{}
	for _, st := range model.OrderStatuses {
		if n := counts[st]; n > 0 {
			out = append(out, StatusCount{Status: st, Count: n})
		}
	}
	return out
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ProductsByCategory counts products per category in first-seen order.
func ProductsByCategory(products []model.Product) []CategoryCount {
	idx := map[string]int{}
	out := []CategoryCount{}
	for _, p := range products {
		i, ok := idx[p.Category]
		if !ok {
			idx[p.Category] = len(out)
			out = append(out, CategoryCount{Category: p.Category})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}

type CategoryTotal struct {
	Category model.ExpenseCategory `json:"category"`
	Amount   decimal.Decimal       `json:"amount"`
	Share    decimal.Decimal       `json:"share"` // percent of all expenses, one decimal place
}

// ExpensesByCategory totals expenses per category, skipping empty categories.
func ExpensesByCategory(expenses []model.Expense) []CategoryTotal {
	totals := map[model.ExpenseCategory]decimal.Decimal{}
	all := decimal.Zero
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		all = all.Add(e.Amount)
	}

	out := []CategoryTotal{}
	for _, c := range model.ExpenseCategories {
		amt, ok := totals[c]
		if !ok {
			continue
		}
		share := decimal.Zero
		if all.IsPositive() {
			share = amt.Div(all).Mul(decimal.NewFromInt(100)).Round(1)
		}
		out = append(out, CategoryTotal{Category: c, Amount: amt, Share: share})
	}
	return out
}

// RecentOrders returns up to limit orders, newest first.
func RecentOrders(orders []model.Order, limit int) []model.Order {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// ActiveOrders counts orders that are not cancelled.
func ActiveOrders(orders []model.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status != model.OrderStatusCancelled {
			n++
		}
	}
	return n
}

// NetProfit is revenue minus expenses; it may be negative.
func NetProfit(st model.DashboardStats) decimal.Decimal {
	return st.MonthlyRevenue.Sub(st.MonthlyExpenses)
}
