package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	"github.com/ChantierApp/site_ledger_app/internal/models"
	"github.com/ChantierApp/site_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFundingRepository struct {
	BaseRepository
}

// newPgxFundingRepository creates a new repository for the funding ledger.
func newPgxFundingRepository(pool *pgxpool.Pool) portsrepo.FundingRepositoryFacade {
	return &PgxFundingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FundingRepositoryFacade = (*PgxFundingRepository)(nil)

const fundingColumns = `funding_id, amount, date, payment_method, reference, notes, created_at, last_updated_at`

func scanFundingRow(row pgx.CollectableRow) (models.Funding, error) {
	var m models.Funding
	err := row.Scan(
		&m.FundingID,
		&m.Amount,
		&m.Date,
		&m.PaymentMethod,
		&m.Reference,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveFunding persists a new funding entry.
func (r *PgxFundingRepository) SaveFunding(ctx context.Context, funding domain.Funding) error {
	m := mapping.ToModelFunding(funding)

	query := `
		INSERT INTO funding (` + fundingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.FundingID,
		m.Amount,
		m.Date,
		m.PaymentMethod,
		m.Reference,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save funding %s: %w", m.FundingID, classifyStoreErr(err))
	}
	return nil
}

// FindFundingByID retrieves a single funding entry.
func (r *PgxFundingRepository) FindFundingByID(ctx context.Context, fundingID string) (*domain.Funding, error) {
	query := `SELECT ` + fundingColumns + ` FROM funding WHERE funding_id = $1;`

	rows, err := r.Pool.Query(ctx, query, fundingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query funding %s: %w", fundingID, classifyStoreErr(err))
	}
	m, err := pgx.CollectOneRow(rows, scanFundingRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan funding %s: %w", fundingID, classifyStoreErr(err))
	}

	d := mapping.ToDomainFunding(m)
	return &d, nil
}

// ListFunding retrieves all funding entries, newest first.
func (r *PgxFundingRepository) ListFunding(ctx context.Context) ([]domain.Funding, error) {
	query := `SELECT ` + fundingColumns + ` FROM funding ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query funding entries: %w", classifyStoreErr(err))
	}
	ms, err := pgx.CollectRows(rows, scanFundingRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan funding entries: %w", classifyStoreErr(err))
	}

	return mapping.ToDomainFundingSlice(ms), nil
}

// UpdateFunding overwrites an existing entry's own fields.
func (r *PgxFundingRepository) UpdateFunding(ctx context.Context, funding domain.Funding) error {
	m := mapping.ToModelFunding(funding)

	query := `
		UPDATE funding
		SET amount = $2, date = $3, payment_method = $4, reference = $5, notes = $6, last_updated_at = $7
		WHERE funding_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.FundingID,
		m.Amount,
		m.Date,
		m.PaymentMethod,
		m.Reference,
		m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update funding %s: %w", m.FundingID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFunding removes an entry.
func (r *PgxFundingRepository) DeleteFunding(ctx context.Context, fundingID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM funding WHERE funding_id = $1;`, fundingID)
	if err != nil {
		return fmt.Errorf("failed to delete funding %s: %w", fundingID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
