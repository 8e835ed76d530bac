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

type PgxWorkerRepository struct {
	BaseRepository
}

func newPgxWorkerRepository(pool *pgxpool.Pool) portsrepo.WorkerRepositoryFacade {
	return &PgxWorkerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

const workerColumns = `worker_id, name, profession, address, phone, created_at, last_updated_at`

func scanWorkerRow(row pgx.CollectableRow) (models.Worker, error) {
	var m models.Worker
	err := row.Scan(
		&m.WorkerID,
		&m.Name,
		&m.Profession,
		&m.Address,
		&m.Phone,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)

	query := `
		INSERT INTO workers (worker_id, name, profession, address, phone, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.WorkerID, m.Name, m.Profession, m.Address, m.Phone, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save worker %s: %w", m.WorkerID, classifyStoreErr(err))
	}
	return nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_id = $1;`
	rows, err := r.Pool.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query worker %s: %w", workerID, classifyStoreErr(err))
	}
	m, err := pgx.CollectOneRow(rows, scanWorkerRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan worker %s: %w", workerID, classifyStoreErr(err))
	}

	d := mapping.ToDomainWorker(m)
	return &d, nil
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", classifyStoreErr(err))
	}
	ms, err := pgx.CollectRows(rows, scanWorkerRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan workers: %w", classifyStoreErr(err))
	}
	return mapping.ToDomainWorkerSlice(ms), nil
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)

	query := `
		UPDATE workers
		SET name = $2, profession = $3, address = $4, phone = $5, last_updated_at = $6
		WHERE worker_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.WorkerID, m.Name, m.Profession, m.Address, m.Phone, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker %s: %w", m.WorkerID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWorker removes the identity record only. Labor entries and payments
// referencing the worker are kept; their display name degrades to the
// placeholder.
func (r *PgxWorkerRepository) DeleteWorker(ctx context.Context, workerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM workers WHERE worker_id = $1;`, workerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker %s: %w", workerID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
