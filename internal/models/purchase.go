package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is goods bought from a supplier, possibly on credit.
// TotalPrice is stored redundantly but always equals Quantity * UnitPrice;
// RemainingAmount always equals TotalPrice - PaidAmount.
type Purchase struct {
	PurchaseID      string          `json:"purchaseID" db:"purchase_id"`
	Date            time.Time       `json:"date" db:"date"`
	ProductName     string          `json:"productName" db:"product_name"`
	Quantity        decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice      decimal.Decimal `json:"totalPrice" db:"total_price"`
	SupplierID      string          `json:"supplierID" db:"supplier_id"`
	PaidAmount      decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" db:"remaining_amount"`
	AuditFields
}
