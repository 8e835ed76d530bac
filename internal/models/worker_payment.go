package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerPayment records money actually disbursed to a worker. It is an
// independent ledger and is not reconciled against any labor entry's
// paid_amount.
type WorkerPayment struct {
	PaymentID string          `json:"paymentID" db:"payment_id"`
	Date      time.Time       `json:"date" db:"date"`
	WorkerID  string          `json:"workerID" db:"worker_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Notes     string          `json:"notes,omitempty" db:"notes"`
	AuditFields
}
