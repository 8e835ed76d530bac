package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a pure debit against the site's capital, assumed fully paid at
// creation. No payment tracking.
type Expense struct {
	ExpenseID   string          `json:"expenseID" db:"expense_id"`
	Date        time.Time       `json:"date" db:"date"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Notes       string          `json:"notes,omitempty" db:"notes"`
	AuditFields
}
