package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase.
// The supplier display name is join-derived and not persisted.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:      d.PurchaseID,
		Date:            d.Date,
		ProductName:     d.ProductName,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		TotalPrice:      d.TotalPrice,
		SupplierID:      d.SupplierID,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase plus its joined supplier name to
// a domain Purchase.
func ToDomainPurchase(m models.Purchase, supplierName string) domain.Purchase {
	if supplierName == "" {
		supplierName = domain.DeletedReferencePlaceholder
	}
	return domain.Purchase{
		PurchaseID:      m.PurchaseID,
		Date:            m.Date,
		ProductName:     m.ProductName,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TotalPrice:      m.TotalPrice,
		SupplierID:      m.SupplierID,
		SupplierName:    supplierName,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
