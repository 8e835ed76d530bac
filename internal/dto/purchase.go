package dto

import (
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
// TotalPrice is optional: when present it must match quantity * unitPrice or
// the request is rejected; the server derives it either way.
type CreatePurchaseRequest struct {
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	ProductName string           `json:"productName" binding:"required,max=256"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" binding:"required"`
	TotalPrice  *decimal.Decimal `json:"totalPrice" binding:"omitempty"`
	SupplierID  string           `json:"supplierID" binding:"required,uuid"`
	PaidAmount  decimal.Decimal  `json:"paidAmount"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID      string          `json:"purchaseID"`
	Date            time.Time       `json:"date"`
	ProductName     string          `json:"productName"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	SupplierID      string          `json:"supplierID"`
	SupplierName    string          `json:"supplierName"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:      p.PurchaseID,
		Date:            p.Date,
		ProductName:     p.ProductName,
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		TotalPrice:      p.TotalPrice,
		SupplierID:      p.SupplierID,
		SupplierName:    p.SupplierName,
		PaidAmount:      p.PaidAmount,
		RemainingAmount: p.RemainingAmount,
		CreatedAt:       p.CreatedAt,
		LastUpdatedAt:   p.LastUpdatedAt,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to response DTOs
func ToListPurchaseResponse(entries []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(entries))
	for i, p := range entries {
		res[i] = ToPurchaseResponse(&p)
	}
	return res
}
