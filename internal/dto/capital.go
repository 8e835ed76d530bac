package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetCapitalRequest defines the data needed to create or overwrite the
// capital record. Currency is optional; the server default applies on first
// create.
type SetCapitalRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"required"`
	OpeningDate    string          `json:"openingDate" binding:"required,datetime=2006-01-02"`
	Currency       string          `json:"currency" binding:"omitempty,uppercase,len=3"`
}

// CapitalResponse defines the data returned for the capital record.
type CapitalResponse struct {
	CapitalID      string          `json:"capitalID"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Currency       string          `json:"currency"`
	OpeningDate    time.Time       `json:"openingDate"`
	IsLocked       bool            `json:"isLocked"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToCapitalResponse converts a domain.Capital to CapitalResponse DTO
func ToCapitalResponse(c *domain.Capital) CapitalResponse {
	return CapitalResponse{
		CapitalID:      c.CapitalID,
		OpeningBalance: c.OpeningBalance,
		Currency:       c.Currency,
		OpeningDate:    c.OpeningDate,
		IsLocked:       c.IsLocked,
		CreatedAt:      c.CreatedAt,
		LastUpdatedAt:  c.LastUpdatedAt,
	}
}
