package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	ExpenseCategoryRent        ExpenseCategory = "rent"
	ExpenseCategoryUtilities   ExpenseCategory = "utilities"
	ExpenseCategoryMaintenance ExpenseCategory = "maintenance"
	ExpenseCategoryStaff       ExpenseCategory = "staff"
	ExpenseCategoryEquipment   ExpenseCategory = "equipment"
	ExpenseCategoryOther       ExpenseCategory = "other"
)

var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryRent,
	ExpenseCategoryUtilities,
	ExpenseCategoryMaintenance,
	ExpenseCategoryStaff,
	ExpenseCategoryEquipment,
	ExpenseCategoryOther,
}

func (c ExpenseCategory) Valid() bool {
	for _, v := range ExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          string          `json:"id" yaml:"id"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    ExpenseCategory `json:"category" yaml:"category"`
	Date        time.Time       `json:"date" yaml:"date"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
}
