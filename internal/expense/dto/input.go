package dto

import (
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/shopspring/decimal"
)

type RecordExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Category    model.ExpenseCategory
	Date        time.Time
}
