package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a funding entry was received.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentBank  PaymentMethod = "bank"
	PaymentCheck PaymentMethod = "check"
)

// Funding represents additional capital injected after the opening balance.
type Funding struct {
	FundingID     string          `json:"fundingID" db:"funding_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Date          time.Time       `json:"date" db:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" db:"payment_method"`
	Reference     string          `json:"reference,omitempty" db:"reference"`
	Notes         string          `json:"notes,omitempty" db:"notes"`
	AuditFields
}
