package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	ImageURL    *string
}

// UpdateProductInput changes only the non-nil fields.
type UpdateProductInput struct {
	ID          string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *string
	ImageURL    *string
}
