package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus is the lifecycle state of an Expense.
type ExpenseStatus string

const (
	ExpenseActive ExpenseStatus = "active"
	ExpenseClosed ExpenseStatus = "closed"
)

// IsValid reports whether s is one of the known statuses.
func (s ExpenseStatus) IsValid() bool {
	return s == ExpenseActive || s == ExpenseClosed
}

// Expense is money spent by the business within the current period.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      ExpenseStatus   `json:"status"`
	Ownership
}
