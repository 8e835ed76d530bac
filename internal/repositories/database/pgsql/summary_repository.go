package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	"github.com/ChantierApp/site_ledger_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSummaryRepository struct {
	BaseRepository
}

func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepository {
	return &PgxSummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SummaryRepository = (*PgxSummaryRepository)(nil)

func (r *PgxSummaryRepository) SumFunding(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM funding;`
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum funding: %w", classifyStoreErr(err))
	}
	return total, nil
}

// GetLedgerTotals reads all aggregates inside one repeatable-read, read-only
// transaction so every sum comes from the same snapshot.
func (r *PgxSummaryRepository) GetLedgerTotals(ctx context.Context) (*domain.LedgerTotals, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin summary transaction: %w", classifyStoreErr(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	totals := &domain.LedgerTotals{}

	err = tx.QueryRow(ctx,
		`SELECT opening_balance, currency FROM capital WHERE capital_id = $1;`,
		models.CapitalSingletonID,
	).Scan(&totals.OpeningBalance, &totals.Currency)
	switch {
	case err == nil:
		totals.CapitalSet = true
	case errors.Is(err, pgx.ErrNoRows):
		totals.CapitalSet = false
		totals.OpeningBalance = decimal.Zero
	default:
		return nil, fmt.Errorf("failed to read capital for summary: %w", classifyStoreErr(err))
	}

	sums := []struct {
		query string
		dest  *decimal.Decimal
	}{
		{`SELECT COALESCE(SUM(amount), 0) FROM funding;`, &totals.TotalFunding},
		{`SELECT COALESCE(SUM(amount), 0) FROM expenses;`, &totals.TotalExpenses},
		{`SELECT COALESCE(SUM(total_price), 0) FROM purchases;`, &totals.TotalPurchases},
		{`SELECT COALESCE(SUM(paid_amount), 0) FROM purchases;`, &totals.TotalPaidPurchases},
		{`SELECT COALESCE(SUM(remaining_amount), 0) FROM purchases;`, &totals.TotalRemainingPurchases},
		{`SELECT COALESCE(SUM(total_price), 0) FROM piecework;`, &totals.TotalPiecework},
		{`SELECT COALESCE(SUM(paid_amount), 0) FROM piecework;`, &totals.TotalPaidPiecework},
		{`SELECT COALESCE(SUM(total_price), 0) FROM daily_wages;`, &totals.TotalDailyWages},
		{`SELECT COALESCE(SUM(paid_amount), 0) FROM daily_wages;`, &totals.TotalPaidDailyWages},
	}
	for _, s := range sums {
		if err := tx.QueryRow(ctx, s.query).Scan(s.dest); err != nil {
			return nil, fmt.Errorf("failed to read ledger aggregate: %w", classifyStoreErr(err))
		}
	}

	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers;`).Scan(&totals.SupplierCount); err != nil {
		return nil, fmt.Errorf("failed to count suppliers: %w", classifyStoreErr(err))
	}
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM workers;`).Scan(&totals.WorkerCount); err != nil {
		return nil, fmt.Errorf("failed to count workers: %w", classifyStoreErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit summary transaction: %w", classifyStoreErr(err))
	}
	return totals, nil
}
