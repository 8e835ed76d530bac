package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// FundingReader defines read operations for the funding ledger.
type FundingReader interface {
	// FindFundingByID retrieves a single funding entry.
	FindFundingByID(ctx context.Context, fundingID string) (*domain.Funding, error)

	// ListFunding retrieves all funding entries, newest first.
	ListFunding(ctx context.Context) ([]domain.Funding, error)
}

// FundingWriter defines write operations for the funding ledger.
type FundingWriter interface {
	// SaveFunding persists a new funding entry.
	SaveFunding(ctx context.Context, funding domain.Funding) error

	// UpdateFunding overwrites an existing entry's own fields (last writer wins).
	UpdateFunding(ctx context.Context, funding domain.Funding) error

	// DeleteFunding removes an entry.
	DeleteFunding(ctx context.Context, fundingID string) error
}

// FundingRepositoryFacade combines all funding repository interfaces.
type FundingRepositoryFacade interface {
	FundingReader
	FundingWriter
}
