package services

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
)

// CapitalSvcFacade is the capital guard: it owns the singleton capital record
// and its one-time lock transition.
type CapitalSvcFacade interface {
	// GetCapital returns the current capital record or apperrors.ErrNotFound.
	GetCapital(ctx context.Context) (*domain.Capital, error)

	// SetOrUpdateCapital creates the record on first call and overwrites
	// openingBalance/openingDate on later calls while unlocked. Returns
	// apperrors.ErrConflict once locked; the stored record is left untouched.
	SetOrUpdateCapital(ctx context.Context, req dto.SetCapitalRequest) (*domain.Capital, error)

	// LockCapital makes openingBalance/openingDate immutable. The only
	// pathway that flips the lock flag.
	LockCapital(ctx context.Context) (*domain.Capital, error)
}
