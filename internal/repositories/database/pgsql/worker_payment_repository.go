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
	"github.com/shopspring/decimal"
)

type PgxWorkerPaymentRepository struct {
	BaseRepository
}

func newPgxWorkerPaymentRepository(pool *pgxpool.Pool) portsrepo.WorkerPaymentRepositoryFacade {
	return &PgxWorkerPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkerPaymentRepositoryFacade = (*PgxWorkerPaymentRepository)(nil)

const workerPaymentJoinQuery = `
	SELECT p.payment_id, p.date, p.worker_id, p.amount, p.notes, p.created_at, p.last_updated_at,
	       COALESCE(w.name, '') AS worker_name
	FROM worker_payments p
	LEFT JOIN workers w ON p.worker_id = w.worker_id
`

type workerPaymentRow struct {
	models.WorkerPayment
	WorkerName string
}

func scanWorkerPaymentRow(row pgx.CollectableRow) (workerPaymentRow, error) {
	var wr workerPaymentRow
	err := row.Scan(
		&wr.PaymentID,
		&wr.Date,
		&wr.WorkerID,
		&wr.Amount,
		&wr.Notes,
		&wr.CreatedAt,
		&wr.LastUpdatedAt,
		&wr.WorkerName,
	)
	return wr, err
}

func (r *PgxWorkerPaymentRepository) SaveWorkerPayment(ctx context.Context, payment domain.WorkerPayment) error {
	m := mapping.ToModelWorkerPayment(payment)

	query := `
		INSERT INTO worker_payments (payment_id, date, worker_id, amount, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.Date, m.WorkerID, m.Amount, m.Notes, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save worker payment %s: %w", m.PaymentID, classifyStoreErr(err))
	}
	return nil
}

func (r *PgxWorkerPaymentRepository) FindWorkerPaymentByID(ctx context.Context, paymentID string) (*domain.WorkerPayment, error) {
	rows, err := r.Pool.Query(ctx, workerPaymentJoinQuery+` WHERE p.payment_id = $1;`, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker payment %s: %w", paymentID, classifyStoreErr(err))
	}
	wr, err := pgx.CollectOneRow(rows, scanWorkerPaymentRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan worker payment %s: %w", paymentID, classifyStoreErr(err))
	}

	d := mapping.ToDomainWorkerPayment(wr.WorkerPayment, wr.WorkerName)
	return &d, nil
}

func (r *PgxWorkerPaymentRepository) ListWorkerPayments(ctx context.Context) ([]domain.WorkerPayment, error) {
	rows, err := r.Pool.Query(ctx, workerPaymentJoinQuery+` ORDER BY p.created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker payments: %w", classifyStoreErr(err))
	}
	wrs, err := pgx.CollectRows(rows, scanWorkerPaymentRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan worker payments: %w", classifyStoreErr(err))
	}

	res := make([]domain.WorkerPayment, len(wrs))
	for i, wr := range wrs {
		res[i] = mapping.ToDomainWorkerPayment(wr.WorkerPayment, wr.WorkerName)
	}
	return res, nil
}

// SumPaymentsByWorker aggregates server-side; COALESCE keeps the result zero
// instead of NULL for workers with no payments.
func (r *PgxWorkerPaymentRepository) SumPaymentsByWorker(ctx context.Context, workerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM worker_payments WHERE worker_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, workerID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for worker %s: %w", workerID, classifyStoreErr(err))
	}
	return total, nil
}

func (r *PgxWorkerPaymentRepository) UpdateWorkerPayment(ctx context.Context, payment domain.WorkerPayment) error {
	m := mapping.ToModelWorkerPayment(payment)

	query := `
		UPDATE worker_payments
		SET date = $2, worker_id = $3, amount = $4, notes = $5, last_updated_at = $6
		WHERE payment_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.Date, m.WorkerID, m.Amount, m.Notes, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker payment %s: %w", m.PaymentID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkerPaymentRepository) DeleteWorkerPayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM worker_payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete worker payment %s: %w", paymentID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
