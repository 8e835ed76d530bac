package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePieceworkRequest defines the data needed to record piecework labor.
// PaidAmount defaults to zero when omitted.
type CreatePieceworkRequest struct {
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	WorkerID   string          `json:"workerID" binding:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Notes      string          `json:"notes" binding:"omitempty,max=1024"`
}

// CreateDailyWageRequest defines the data needed to record daily-wage labor.
type CreateDailyWageRequest struct {
	Date       string          `json:"date" binding:"required,datetime=2006-01-02"`
	WorkerID   string          `json:"workerID" binding:"required,uuid"`
	Days       decimal.Decimal `json:"days" binding:"required"`
	DailyRate  decimal.Decimal `json:"dailyRate" binding:"required"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Notes      string          `json:"notes" binding:"omitempty,max=1024"`
}

// PieceworkResponse defines the data returned for a piecework entry.
type PieceworkResponse struct {
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
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// DailyWageResponse defines the data returned for a daily-wage entry.
type DailyWageResponse struct {
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
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToPieceworkResponse converts a domain.Piecework to PieceworkResponse DTO
func ToPieceworkResponse(p *domain.Piecework) PieceworkResponse {
	return PieceworkResponse{
		PieceworkID:     p.PieceworkID,
		Date:            p.Date,
		WorkerID:        p.WorkerID,
		WorkerName:      p.WorkerName,
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		TotalPrice:      p.TotalPrice,
		PaidAmount:      p.PaidAmount,
		RemainingAmount: p.RemainingAmount,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// ToListPieceworkResponse converts piecework entries to response DTOs
func ToListPieceworkResponse(entries []domain.Piecework) []PieceworkResponse {
	res := make([]PieceworkResponse, len(entries))
	for i, p := range entries {
		res[i] = ToPieceworkResponse(&p)
	}
	return res
}

// ToDailyWageResponse converts a domain.DailyWage to DailyWageResponse DTO
func ToDailyWageResponse(d *domain.DailyWage) DailyWageResponse {
	return DailyWageResponse{
		DailyWageID:     d.DailyWageID,
		Date:            d.Date,
		WorkerID:        d.WorkerID,
		WorkerName:      d.WorkerName,
		Days:            d.Days,
		DailyRate:       d.DailyRate,
		TotalPrice:      d.TotalPrice,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		LastUpdatedAt:   d.LastUpdatedAt,
	}
}

// ToListDailyWageResponse converts daily-wage entries to response DTOs
func ToListDailyWageResponse(entries []domain.DailyWage) []DailyWageResponse {
	res := make([]DailyWageResponse, len(entries))
	for i, d := range entries {
		res[i] = ToDailyWageResponse(&d)
	}
	return res
}
