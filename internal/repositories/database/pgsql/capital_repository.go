package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	"github.com/ChantierApp/site_ledger_app/internal/models"
	"github.com/ChantierApp/site_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCapitalRepository struct {
	BaseRepository
}

// newPgxCapitalRepository creates a new repository for the capital record.
func newPgxCapitalRepository(pool *pgxpool.Pool) portsrepo.CapitalRepositoryFacade {
	return &PgxCapitalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CapitalRepositoryFacade = (*PgxCapitalRepository)(nil)

const capitalColumns = `capital_id, opening_balance, currency, opening_date, is_locked, created_at, last_updated_at`

func scanCapital(row pgx.Row) (*domain.Capital, error) {
	var m models.Capital
	err := row.Scan(
		&m.CapitalID,
		&m.OpeningBalance,
		&m.Currency,
		&m.OpeningDate,
		&m.IsLocked,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCapital(m)
	return &d, nil
}

// FindCapital retrieves the singleton capital row.
func (r *PgxCapitalRepository) FindCapital(ctx context.Context) (*domain.Capital, error) {
	query := `SELECT ` + capitalColumns + ` FROM capital WHERE capital_id = $1;`

	capital, err := scanCapital(r.Pool.QueryRow(ctx, query, models.CapitalSingletonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find capital: %w", classifyStoreErr(err))
	}
	return capital, nil
}

// UpsertCapital creates the row if absent or overwrites balance/date while
// unlocked, in one atomic statement. The unique key on capital_id resolves
// concurrent first-time writes to a single row; the conditional update leaves
// a locked row byte-for-byte unchanged, which surfaces as ErrConflict.
// Currency is only applied on first create, matching the original behavior of
// overwriting just the balance and date on later writes.
func (r *PgxCapitalRepository) UpsertCapital(ctx context.Context, openingBalance decimal.Decimal, openingDate time.Time, currency string) (*domain.Capital, error) {
	query := `
		INSERT INTO capital (capital_id, opening_balance, currency, opening_date, is_locked, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		ON CONFLICT (capital_id) DO UPDATE SET
			opening_balance = EXCLUDED.opening_balance,
			opening_date = EXCLUDED.opening_date,
			last_updated_at = NOW()
		WHERE capital.is_locked = FALSE
		RETURNING ` + capitalColumns + `;
	`

	capital, err := scanCapital(r.Pool.QueryRow(ctx, query, models.CapitalSingletonID, openingBalance, openingDate, currency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The row exists and is locked; the conditional update matched nothing.
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to upsert capital: %w", classifyStoreErr(err))
	}
	return capital, nil
}

// LockCapital sets is_locked. Idempotent when already locked.
func (r *PgxCapitalRepository) LockCapital(ctx context.Context) (*domain.Capital, error) {
	query := `
		UPDATE capital
		SET is_locked = TRUE, last_updated_at = NOW()
		WHERE capital_id = $1
		RETURNING ` + capitalColumns + `;
	`

	capital, err := scanCapital(r.Pool.QueryRow(ctx, query, models.CapitalSingletonID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock capital: %w", classifyStoreErr(err))
	}
	return capital, nil
}
