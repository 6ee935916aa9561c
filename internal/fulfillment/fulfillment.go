// Package fulfillment turns an order request into priced order items and
// the stock decrements needed to fulfil it.
package fulfillment

import (
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/validate"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Line struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type Request struct {
	UserID        string `json:"user_id"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Lines         []Line `json:"items" validate:"required,min=1,dive"`
}

type Decrement struct {
	ProductID string
	Quantity  int
}

// Plan is the result of a successful check. Items carry no IDs yet.
type Plan struct {
	Items      []model.OrderItem
	Total      decimal.Decimal
	Decrements []Decrement
}

// Build checks req against the pre-order products and prices every line
// at the product's current price. Lines naming the same product are
// summed before the stock comparison.
func Build(products []model.Product, req Request) (*Plan, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	requested := make(map[string]int, len(req.Lines))
	order := make([]string, 0, len(req.Lines))
	short := map[string]string{}
	for _, l := range req.Lines {
		if _, ok := byID[l.ProductID]; !ok {
			return nil, &validate.ValidationError{
				Message: fmt.Sprintf("Product %s does not exist.", l.ProductID),
				Fields:  map[string]string{l.ProductID: "unknown product"},
				Err:     ErrUnknownProduct,
			}
		}
		if _, seen := requested[l.ProductID]; !seen {
			order = append(order, l.ProductID)
			requested[l.ProductID] = 0
		}
		if short[l.ProductID] != "" {
			continue
		}
		// Compare against the remaining headroom so the running sum never overflows.
		p := byID[l.ProductID]
		if l.Quantity > p.Quantity-requested[l.ProductID] {
			short[l.ProductID] = fmt.Sprintf("%s: requested more than available %d", p.Name, p.Quantity)
			continue
		}
		requested[l.ProductID] += l.Quantity
	}

	if len(short) > 0 {
		return nil, &validate.ValidationError{
			Message: "Some items exceed available inventory.",
			Fields:  short,
			Err:     ErrInsufficientStock,
		}
	}

	plan := &Plan{
		Items:      make([]model.OrderItem, 0, len(req.Lines)),
		Total:      decimal.Zero,
		Decrements: make([]Decrement, 0, len(order)),
	}
	for _, l := range req.Lines {
		p := byID[l.ProductID]
		item := model.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    l.Quantity,
			Price:       p.Price,
		}
		plan.Items = append(plan.Items, item)
		plan.Total = plan.Total.Add(item.LineTotal())
	}
	for _, id := range order {
		plan.Decrements = append(plan.Decrements, Decrement{ProductID: id, Quantity: requested[id]})
	}

	return plan, nil
}
