package pgsql

import (
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against one shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CapitalRepo:       newPgxCapitalRepository(pool),
		FundingRepo:       newPgxFundingRepository(pool),
		ExpenseRepo:       newPgxExpenseRepository(pool),
		PurchaseRepo:      newPgxPurchaseRepository(pool),
		PieceworkRepo:     newPgxPieceworkRepository(pool),
		DailyWageRepo:     newPgxDailyWageRepository(pool),
		WorkerPaymentRepo: newPgxWorkerPaymentRepository(pool),
		SupplierRepo:      newPgxSupplierRepository(pool),
		WorkerRepo:        newPgxWorkerRepository(pool),
		SummaryRepo:       newPgxSummaryRepository(pool),
	}
}
