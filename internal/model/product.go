package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel   `yaml:",inline"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Quantity    int             `json:"quantity" yaml:"quantity"`
	Category    string          `json:"category" yaml:"category"`
	ImageURL    *string         `json:"image_url,omitempty" yaml:"image_url"`
}

// LowStockThreshold is the on-hand quantity below which a product counts as low stock.
const LowStockThreshold = 50

func (p Product) IsLowStock() bool {
	return p.Quantity < LowStockThreshold
}

// Clone returns a copy that does not share the image URL with p.
func (p Product) Clone() Product {
	c := p
	if p.ImageURL != nil {
		url := *p.ImageURL
		c.ImageURL = &url
	}
	return c
}

func CloneProducts(in []Product) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}
