package dto

import "github.com/fekuna/omnipos-warehouse-service/internal/model"

type UserFilters struct {
	SearchQuery string // name, email, role
	Role        model.Role
	Page        int
	PageSize    int
}
