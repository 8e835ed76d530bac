package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFundingRequest defines the data needed to record a funding entry.
// Also used for updates; every field is re-validated the same way.
type CreateFundingRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash bank check"`
	Reference     string          `json:"reference" binding:"omitempty,max=128"`
	Notes         string          `json:"notes" binding:"omitempty,max=1024"`
}

// FundingResponse defines the data returned for a funding entry.
type FundingResponse struct {
	FundingID     string          `json:"fundingID"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToFundingResponse converts a domain.Funding to FundingResponse DTO
func ToFundingResponse(f *domain.Funding) FundingResponse {
	return FundingResponse{
		FundingID:     f.FundingID,
		Amount:        f.Amount,
		Date:          f.Date,
		PaymentMethod: string(f.PaymentMethod),
		Reference:     f.Reference,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
		LastUpdatedAt: f.LastUpdatedAt,
	}
}

// ToListFundingResponse converts a slice of domain.Funding to response DTOs
func ToListFundingResponse(entries []domain.Funding) []FundingResponse {
	res := make([]FundingResponse, len(entries))
	for i, f := range entries {
		res[i] = ToFundingResponse(&f)
	}
	return res
}
