package dto

import "github.com/fekuna/omnipos-warehouse-service/internal/model"

type OrderFilters struct {
	SearchQuery string // customer name, customer email, order id
	Status      model.OrderStatus
	Page        int
	PageSize    int
}
