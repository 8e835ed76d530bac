package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Capital is the singleton opening-balance record.
//
// Lifecycle: Unset -> Set(unlocked) -> Set(locked). While unlocked the balance
// and date may be overwritten in place; once locked they are immutable and any
// further write fails with a conflict.
type Capital struct {
	CapitalID      string          `json:"capitalID"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Currency       string          `json:"currency"`
	OpeningDate    time.Time       `json:"openingDate"`
	IsLocked       bool            `json:"isLocked"`
	AuditFields
}
