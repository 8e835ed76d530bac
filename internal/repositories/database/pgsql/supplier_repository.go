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

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, address, phone, created_at, last_updated_at`

func scanSupplierRow(row pgx.CollectableRow) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.Name,
		&m.Address,
		&m.Phone,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (supplier_id, name, address, phone, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Address, m.Phone, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier %s: %w", m.SupplierID, classifyStoreErr(err))
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	rows, err := r.Pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier %s: %w", supplierID, classifyStoreErr(err))
	}
	m, err := pgx.CollectOneRow(rows, scanSupplierRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan supplier %s: %w", supplierID, classifyStoreErr(err))
	}

	d := mapping.ToDomainSupplier(m)
	return &d, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", classifyStoreErr(err))
	}
	ms, err := pgx.CollectRows(rows, scanSupplierRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan suppliers: %w", classifyStoreErr(err))
	}
	return mapping.ToDomainSupplierSlice(ms), nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)

	query := `
		UPDATE suppliers
		SET name = $2, address = $3, phone = $4, last_updated_at = $5
		WHERE supplier_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Address, m.Phone, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes the identity record only. Purchases referencing the
// supplier are kept; their display name degrades to the placeholder.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
