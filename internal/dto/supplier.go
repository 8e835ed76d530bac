package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required,max=256"`
	Address string `json:"address" binding:"omitempty,max=512"`
	Phone   string `json:"phone" binding:"omitempty,max=32"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		Address:       s.Address,
		Phone:         s.Phone,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSupplierResponse converts suppliers to response DTOs
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}
