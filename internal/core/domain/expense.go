package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a fully-paid debit with no payment tracking.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}
