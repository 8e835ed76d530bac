package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Piecework is labor paid per unit of output.
// Same invariants as Purchase: TotalPrice == Quantity * UnitPrice,
// RemainingAmount == TotalPrice - PaidAmount.
type Piecework struct {
	PieceworkID     string          `json:"pieceworkID"`
	Date            time.Time       `json:"date"`
	WorkerID        string          `json:"workerID"`
	WorkerName      string          `json:"workerName"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Notes           string          `json:"notes,omitempty"`
	AuditFields
}

// DailyWage is labor paid per day worked, TotalPrice == Days * DailyRate.
type DailyWage struct {
	DailyWageID     string          `json:"dailyWageID"`
	Date            time.Time       `json:"date"`
	WorkerID        string          `json:"workerID"`
	WorkerName      string          `json:"workerName"`
	Days            decimal.Decimal `json:"days"`
	DailyRate       decimal.Decimal `json:"dailyRate"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Notes           string          `json:"notes,omitempty"`
	AuditFields
}
