package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is goods bought from a supplier, possibly on credit.
//
// Invariants at creation: TotalPrice == Quantity * UnitPrice and
// RemainingAmount == TotalPrice - PaidAmount, with PaidAmount in
// [0, TotalPrice].
type Purchase struct {
	PurchaseID      string          `json:"purchaseID"`
	Date            time.Time       `json:"date"`
	ProductName     string          `json:"productName"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	SupplierID      string          `json:"supplierID"`
	SupplierName    string          `json:"supplierName"` // display join; placeholder when the supplier is gone
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	AuditFields
}
