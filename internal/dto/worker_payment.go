package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkerPaymentRequest defines the data needed to record a disbursement
// to a worker.
type CreateWorkerPaymentRequest struct {
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	WorkerID string          `json:"workerID" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Notes    string          `json:"notes" binding:"omitempty,max=1024"`
}

// WorkerPaymentResponse defines the data returned for a worker payment.
type WorkerPaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	Date          time.Time       `json:"date"`
	WorkerID      string          `json:"workerID"`
	WorkerName    string          `json:"workerName"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToWorkerPaymentResponse converts a domain.WorkerPayment to its DTO
func ToWorkerPaymentResponse(p *domain.WorkerPayment) WorkerPaymentResponse {
	return WorkerPaymentResponse{
		PaymentID:     p.PaymentID,
		Date:          p.Date,
		WorkerID:      p.WorkerID,
		WorkerName:    p.WorkerName,
		Amount:        p.Amount,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListWorkerPaymentResponse converts worker payments to response DTOs
func ToListWorkerPaymentResponse(entries []domain.WorkerPayment) []WorkerPaymentResponse {
	res := make([]WorkerPaymentResponse, len(entries))
	for i, p := range entries {
		res[i] = ToWorkerPaymentResponse(&p)
	}
	return res
}
