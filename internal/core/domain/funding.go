package domain

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

// Funding is a credit to the site's capital recorded after the opening
// balance. Append-mostly; immutable after creation except via explicit
// update/delete.
type Funding struct {
	FundingID     string          `json:"fundingID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	AuditFields
}
