package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalSingletonID is the fixed primary key of the one capital row.
// The unique constraint on it is what makes concurrent first-time writes safe.
const CapitalSingletonID = "CAPITAL"

// Capital represents the site's opening balance record. At most one row
// exists; once is_locked is set the balance and date are immutable.
type Capital struct {
	CapitalID      string          `json:"capitalID" db:"capital_id"`
	OpeningBalance decimal.Decimal `json:"openingBalance" db:"opening_balance"`
	Currency       string          `json:"currency" db:"currency"`
	OpeningDate    time.Time       `json:"openingDate" db:"opening_date"`
	IsLocked       bool            `json:"isLocked" db:"is_locked"`
	AuditFields
}
