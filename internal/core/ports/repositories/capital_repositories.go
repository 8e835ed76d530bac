package repositories

import (
	"context"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CapitalReader defines read operations for the singleton capital record.
type CapitalReader interface {
	// FindCapital retrieves the capital record, or apperrors.ErrNotFound if
	// none has been set yet.
	FindCapital(ctx context.Context) (*domain.Capital, error)
}

// CapitalWriter defines write operations for the singleton capital record.
//
// Implementations must make UpsertCapital a single atomic create-or-update:
// two concurrent first-time calls result in exactly one stored row, never two,
// and a locked row is never modified. A read-then-write sequence is not an
// acceptable implementation.
type CapitalWriter interface {
	// UpsertCapital creates the capital record if absent or overwrites
	// openingBalance/openingDate in place while unlocked. Returns
	// apperrors.ErrConflict if the record is locked.
	UpsertCapital(ctx context.Context, openingBalance decimal.Decimal, openingDate time.Time, currency string) (*domain.Capital, error)

	// LockCapital sets is_locked. Idempotent when already locked. Returns
	// apperrors.ErrNotFound if no record exists.
	LockCapital(ctx context.Context) (*domain.Capital, error)
}

// CapitalRepositoryFacade combines all capital repository interfaces.
type CapitalRepositoryFacade interface {
	CapitalReader
	CapitalWriter
}
