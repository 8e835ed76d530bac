package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Piecework is labor paid per unit of output. TotalPrice = Quantity * UnitPrice.
type Piecework struct {
	PieceworkID     string          `json:"pieceworkID" db:"piecework_id"`
	Date            time.Time       `json:"date" db:"date"`
	WorkerID        string          `json:"workerID" db:"worker_id"`
	Quantity        decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice      decimal.Decimal `json:"totalPrice" db:"total_price"`
	PaidAmount      decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" db:"remaining_amount"`
	Notes           string          `json:"notes,omitempty" db:"notes"`
	AuditFields
}

// DailyWage is labor paid per day worked. TotalPrice = Days * DailyRate.
type DailyWage struct {
	DailyWageID     string          `json:"dailyWageID" db:"daily_wage_id"`
	Date            time.Time       `json:"date" db:"date"`
	WorkerID        string          `json:"workerID" db:"worker_id"`
	Days            decimal.Decimal `json:"days" db:"days"`
	DailyRate       decimal.Decimal `json:"dailyRate" db:"daily_rate"`
	TotalPrice      decimal.Decimal `json:"totalPrice" db:"total_price"`
	PaidAmount      decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" db:"remaining_amount"`
	Notes           string          `json:"notes,omitempty" db:"notes"`
	AuditFields
}
