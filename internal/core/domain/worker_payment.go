package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerPayment is a disbursement to a worker. It is a ledger of its own and
// deliberately not reconciled against Piecework/DailyWage paid amounts; the
// per-worker statement surfaces both figures side by side.
type WorkerPayment struct {
	PaymentID  string          `json:"paymentID"`
	Date       time.Time       `json:"date"`
	WorkerID   string          `json:"workerID"`
	WorkerName string          `json:"workerName"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	AuditFields
}
