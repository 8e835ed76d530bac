package dto

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CapitalSummaryResponse is the opening balance plus accumulated funding.
type CapitalSummaryResponse struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalFunding   decimal.Decimal `json:"totalFunding"`
	TotalCapital   decimal.Decimal `json:"totalCapital"`
	Currency       string          `json:"currency"`
}

// DashboardSummaryResponse is the full dashboard view.
type DashboardSummaryResponse struct {
	Capital struct {
		Total          decimal.Decimal `json:"total"`
		OpeningBalance decimal.Decimal `json:"openingBalance"`
		Funding        decimal.Decimal `json:"funding"`
	} `json:"capital"`
	Expenses  decimal.Decimal `json:"expenses"`
	Purchases struct {
		Total     decimal.Decimal `json:"total"`
		Paid      decimal.Decimal `json:"paid"`
		Remaining decimal.Decimal `json:"remaining"`
	} `json:"purchases"`
	Labor struct {
		Total     decimal.Decimal `json:"total"`
		Paid      decimal.Decimal `json:"paid"`
		Remaining decimal.Decimal `json:"remaining"`
	} `json:"labor"`
	Counts struct {
		Suppliers int64 `json:"suppliers"`
		Workers   int64 `json:"workers"`
	} `json:"counts"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ToCapitalSummaryResponse converts a domain.CapitalSummary to its DTO
func ToCapitalSummaryResponse(s *domain.CapitalSummary) CapitalSummaryResponse {
	return CapitalSummaryResponse{
		OpeningBalance: s.OpeningBalance,
		TotalFunding:   s.TotalFunding,
		TotalCapital:   s.TotalCapital,
		Currency:       s.Currency,
	}
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	var res DashboardSummaryResponse
	res.Capital.Total = s.Capital.Total
	res.Capital.OpeningBalance = s.Capital.OpeningBalance
	res.Capital.Funding = s.Capital.Funding
	res.Expenses = s.Expenses
	res.Purchases.Total = s.Purchases.Total
	res.Purchases.Paid = s.Purchases.Paid
	res.Purchases.Remaining = s.Purchases.Remaining
	res.Labor.Total = s.Labor.Total
	res.Labor.Paid = s.Labor.Paid
	res.Labor.Remaining = s.Labor.Remaining
	res.Counts.Suppliers = s.Counts.Suppliers
	res.Counts.Workers = s.Counts.Workers
	res.CurrentBalance = s.CurrentBalance
	return res
}
