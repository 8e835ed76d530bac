package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkerRequest defines the data needed to create a worker.
type CreateWorkerRequest struct {
	Name       string `json:"name" binding:"required,max=256"`
	Profession string `json:"profession" binding:"required,max=128"`
	Address    string `json:"address" binding:"omitempty,max=512"`
	Phone      string `json:"phone" binding:"omitempty,max=32"`
}

// WorkerResponse defines the data returned for a worker.
type WorkerResponse struct {
	WorkerID      string    `json:"workerID"`
	Name          string    `json:"name"`
	Profession    string    `json:"profession"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// WorkerStatementResponse reports a worker's earnings across both labor
// ledgers next to the independent payment ledger.
type WorkerStatementResponse struct {
	Worker             WorkerResponse  `json:"worker"`
	TotalEarned        decimal.Decimal `json:"totalEarned"`
	PaidOnEntries      decimal.Decimal `json:"paidOnEntries"`
	RemainingOnEntries decimal.Decimal `json:"remainingOnEntries"`
	TotalPayments      decimal.Decimal `json:"totalPayments"`
}

// ToWorkerResponse converts a domain.Worker to WorkerResponse DTO
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:      w.WorkerID,
		Name:          w.Name,
		Profession:    w.Profession,
		Address:       w.Address,
		Phone:         w.Phone,
		CreatedAt:     w.CreatedAt,
		LastUpdatedAt: w.LastUpdatedAt,
	}
}

// ToListWorkerResponse converts workers to response DTOs
func ToListWorkerResponse(workers []domain.Worker) []WorkerResponse {
	res := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		res[i] = ToWorkerResponse(&w)
	}
	return res
}

// ToWorkerStatementResponse converts a domain.WorkerStatement to its DTO
func ToWorkerStatementResponse(s *domain.WorkerStatement) WorkerStatementResponse {
	return WorkerStatementResponse{
		Worker:             ToWorkerResponse(&s.Worker),
		TotalEarned:        s.TotalEarned,
		PaidOnEntries:      s.PaidOnEntries,
		RemainingOnEntries: s.RemainingOnEntries,
		TotalPayments:      s.TotalPayments,
	}
}
