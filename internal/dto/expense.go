package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required,max=512"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes" binding:"omitempty,max=1024"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Date:          e.Date,
		Description:   e.Description,
		Amount:        e.Amount,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs
func ToListExpenseResponse(entries []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(entries))
	for i, e := range entries {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
