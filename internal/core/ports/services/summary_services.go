package services

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// SummarySvcFacade is the aggregation engine: stateless, read-only reductions
// of the ledgers into balance-sheet views.
type SummarySvcFacade interface {
	// GetCapitalSummary returns opening balance + funding totals. Fails with
	// apperrors.ErrNotFound when no capital record has been set.
	GetCapitalSummary(ctx context.Context) (*domain.CapitalSummary, error)

	// GetDashboardSummary composes the full dashboard view. Renders even
	// before capital is configured (opening balance treated as zero); any
	// store failure aborts the whole computation rather than returning
	// partial totals.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
