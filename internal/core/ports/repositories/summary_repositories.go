package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryRepository is the narrow read contract the aggregation engine depends
// on. It never exposes individual rows, only server-side aggregates.
type SummaryRepository interface {
	// SumFunding returns the total of all funding amounts as one aggregate
	// query (zero for an empty ledger).
	SumFunding(ctx context.Context) (decimal.Decimal, error)

	// GetLedgerTotals reads every ledger's aggregates in one consistent
	// snapshot: a write committing concurrently is either reflected in all
	// returned sums or in none of them.
	GetLedgerTotals(ctx context.Context) (*domain.LedgerTotals, error)
}
