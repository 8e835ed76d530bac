package domain

import (
	"github.com/shopspring/decimal"
)

// CapitalSummary is the opening balance plus accumulated funding.
type CapitalSummary struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalFunding   decimal.Decimal `json:"totalFunding"`
	TotalCapital   decimal.Decimal `json:"totalCapital"`
	Currency       string          `json:"currency"`
}

// CapitalSection groups the capital figures inside the dashboard view.
type CapitalSection struct {
	Total          decimal.Decimal `json:"total"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Funding        decimal.Decimal `json:"funding"`
}

// PaidSection groups a ledger's total vs settled vs outstanding amounts.
type PaidSection struct {
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

// CountsSection holds the distinct identity-record counts.
type CountsSection struct {
	Suppliers int64 `json:"suppliers"`
	Workers   int64 `json:"workers"`
}

// DashboardSummary is the full balance-sheet view composed by the aggregation
// engine. It is computed on demand and never persisted.
type DashboardSummary struct {
	Capital        CapitalSection  `json:"capital"`
	Expenses       decimal.Decimal `json:"expenses"`
	Purchases      PaidSection     `json:"purchases"`
	Labor          PaidSection     `json:"labor"`
	Counts         CountsSection   `json:"counts"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// LedgerTotals is the raw aggregate row the summary repository reads in one
// consistent snapshot. Every sum is taken inside the same transaction so a
// concurrent commit is either visible in all fields or in none.
type LedgerTotals struct {
	CapitalSet              bool
	OpeningBalance          decimal.Decimal
	Currency                string
	TotalFunding            decimal.Decimal
	TotalExpenses           decimal.Decimal
	TotalPurchases          decimal.Decimal
	TotalPaidPurchases      decimal.Decimal
	TotalRemainingPurchases decimal.Decimal
	TotalPiecework          decimal.Decimal
	TotalPaidPiecework      decimal.Decimal
	TotalDailyWages         decimal.Decimal
	TotalPaidDailyWages     decimal.Decimal
	SupplierCount           int64
	WorkerCount             int64
}

// WorkerStatement surfaces both "paid" ledgers for one worker: the paid
// amounts recorded on labor entries and the independent payment ledger.
type WorkerStatement struct {
	Worker             Worker          `json:"worker"`
	TotalEarned        decimal.Decimal `json:"totalEarned"`
	PaidOnEntries      decimal.Decimal `json:"paidOnEntries"`
	RemainingOnEntries decimal.Decimal `json:"remainingOnEntries"`
	TotalPayments      decimal.Decimal `json:"totalPayments"`
}
