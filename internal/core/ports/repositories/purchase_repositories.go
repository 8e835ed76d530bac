package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// PurchaseReader defines read operations for the purchase ledger.
// List/find results carry the supplier display name, degraded to the deleted
// placeholder when the referenced supplier no longer exists.
type PurchaseReader interface {
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for the purchase ledger.
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) error
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
