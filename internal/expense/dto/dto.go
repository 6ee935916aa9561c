package dto

import (
	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/stats"
	"github.com/shopspring/decimal"
)

type ExpenseFilters struct {
	SearchQuery string // description, category
	Category    model.ExpenseCategory
	Page        int
	PageSize    int
}

type Summary struct {
	Total      decimal.Decimal       `json:"total"`
	Categories []stats.CategoryTotal `json:"categories"`
}
