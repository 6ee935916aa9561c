package dto

type ProductFilters struct {
	Category    string
	SearchQuery string // name, description, category
	LowStock    bool   // only products below the low-stock threshold
	InStock     bool   // only products with quantity > 0
	SortBy      string // name, price, quantity, created_at
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
