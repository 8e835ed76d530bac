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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for the purchase ledger.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// purchaseJoinQuery pulls the supplier display name alongside each row.
// LEFT JOIN keeps entries whose supplier was deleted; mapping degrades the
// empty name to the placeholder.
const purchaseJoinQuery = `
	SELECT p.purchase_id, p.date, p.product_name, p.quantity, p.unit_price, p.total_price,
	       p.supplier_id, p.paid_amount, p.remaining_amount, p.created_at, p.last_updated_at,
	       COALESCE(s.name, '') AS supplier_name
	FROM purchases p
	LEFT JOIN suppliers s ON p.supplier_id = s.supplier_id
`

type purchaseRow struct {
	models.Purchase
	SupplierName string
}

func scanPurchaseRow(row pgx.CollectableRow) (purchaseRow, error) {
	var pr purchaseRow
	err := row.Scan(
		&pr.PurchaseID,
		&pr.Date,
		&pr.ProductName,
		&pr.Quantity,
		&pr.UnitPrice,
		&pr.TotalPrice,
		&pr.SupplierID,
		&pr.PaidAmount,
		&pr.RemainingAmount,
		&pr.CreatedAt,
		&pr.LastUpdatedAt,
		&pr.SupplierName,
	)
	return pr, err
}

// SavePurchase persists a new purchase.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		INSERT INTO purchases (purchase_id, date, product_name, quantity, unit_price, total_price,
			supplier_id, paid_amount, remaining_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.Date,
		m.ProductName,
		m.Quantity,
		m.UnitPrice,
		m.TotalPrice,
		m.SupplierID,
		m.PaidAmount,
		m.RemainingAmount,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase %s: %w", m.PurchaseID, classifyStoreErr(err))
	}
	return nil
}

// FindPurchaseByID retrieves a single purchase with its supplier name.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, purchaseJoinQuery+` WHERE p.purchase_id = $1;`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase %s: %w", purchaseID, classifyStoreErr(err))
	}
	pr, err := pgx.CollectOneRow(rows, scanPurchaseRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan purchase %s: %w", purchaseID, classifyStoreErr(err))
	}

	d := mapping.ToDomainPurchase(pr.Purchase, pr.SupplierName)
	return &d, nil
}

// ListPurchases retrieves all purchases with supplier names, newest first.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, purchaseJoinQuery+` ORDER BY p.created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", classifyStoreErr(err))
	}
	prs, err := pgx.CollectRows(rows, scanPurchaseRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan purchases: %w", classifyStoreErr(err))
	}

	res := make([]domain.Purchase, len(prs))
	for i, pr := range prs {
		res[i] = mapping.ToDomainPurchase(pr.Purchase, pr.SupplierName)
	}
	return res, nil
}

// UpdatePurchase overwrites an existing purchase's own fields.
func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		UPDATE purchases
		SET date = $2, product_name = $3, quantity = $4, unit_price = $5, total_price = $6,
			supplier_id = $7, paid_amount = $8, remaining_amount = $9, last_updated_at = $10
		WHERE purchase_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.Date,
		m.ProductName,
		m.Quantity,
		m.UnitPrice,
		m.TotalPrice,
		m.SupplierID,
		m.PaidAmount,
		m.RemainingAmount,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase %s: %w", m.PurchaseID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePurchase removes a purchase.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
