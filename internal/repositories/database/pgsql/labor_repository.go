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

type PgxPieceworkRepository struct {
	BaseRepository
}

func newPgxPieceworkRepository(pool *pgxpool.Pool) portsrepo.PieceworkRepositoryFacade {
	return &PgxPieceworkRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PieceworkRepositoryFacade = (*PgxPieceworkRepository)(nil)

const pieceworkJoinQuery = `
	SELECT e.piecework_id, e.date, e.worker_id, e.quantity, e.unit_price, e.total_price,
	       e.paid_amount, e.remaining_amount, e.notes, e.created_at, e.last_updated_at,
	       COALESCE(w.name, '') AS worker_name
	FROM piecework e
	LEFT JOIN workers w ON e.worker_id = w.worker_id
`

type pieceworkRow struct {
	models.Piecework
	WorkerName string
}

func scanPieceworkRow(row pgx.CollectableRow) (pieceworkRow, error) {
	var pr pieceworkRow
	err := row.Scan(
		&pr.PieceworkID,
		&pr.Date,
		&pr.WorkerID,
		&pr.Quantity,
		&pr.UnitPrice,
		&pr.TotalPrice,
		&pr.PaidAmount,
		&pr.RemainingAmount,
		&pr.Notes,
		&pr.CreatedAt,
		&pr.LastUpdatedAt,
		&pr.WorkerName,
	)
	return pr, err
}

func (r *PgxPieceworkRepository) SavePiecework(ctx context.Context, entry domain.Piecework) error {
	m := mapping.ToModelPiecework(entry)

	query := `
		INSERT INTO piecework (piecework_id, date, worker_id, quantity, unit_price, total_price,
			paid_amount, remaining_amount, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PieceworkID, m.Date, m.WorkerID, m.Quantity, m.UnitPrice, m.TotalPrice,
		m.PaidAmount, m.RemainingAmount, m.Notes, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save piecework entry %s: %w", m.PieceworkID, classifyStoreErr(err))
	}
	return nil
}

func (r *PgxPieceworkRepository) FindPieceworkByID(ctx context.Context, pieceworkID string) (*domain.Piecework, error) {
	rows, err := r.Pool.Query(ctx, pieceworkJoinQuery+` WHERE e.piecework_id = $1;`, pieceworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query piecework entry %s: %w", pieceworkID, classifyStoreErr(err))
	}
	pr, err := pgx.CollectOneRow(rows, scanPieceworkRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan piecework entry %s: %w", pieceworkID, classifyStoreErr(err))
	}

	d := mapping.ToDomainPiecework(pr.Piecework, pr.WorkerName)
	return &d, nil
}

func (r *PgxPieceworkRepository) ListPiecework(ctx context.Context) ([]domain.Piecework, error) {
	return r.collectPiecework(ctx, pieceworkJoinQuery+` ORDER BY e.created_at DESC;`)
}

func (r *PgxPieceworkRepository) ListPieceworkByWorker(ctx context.Context, workerID string) ([]domain.Piecework, error) {
	return r.collectPiecework(ctx, pieceworkJoinQuery+` WHERE e.worker_id = $1 ORDER BY e.created_at DESC;`, workerID)
}

func (r *PgxPieceworkRepository) collectPiecework(ctx context.Context, query string, args ...any) ([]domain.Piecework, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query piecework entries: %w", classifyStoreErr(err))
	}
	prs, err := pgx.CollectRows(rows, scanPieceworkRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan piecework entries: %w", classifyStoreErr(err))
	}

	res := make([]domain.Piecework, len(prs))
	for i, pr := range prs {
		res[i] = mapping.ToDomainPiecework(pr.Piecework, pr.WorkerName)
	}
	return res, nil
}

func (r *PgxPieceworkRepository) UpdatePiecework(ctx context.Context, entry domain.Piecework) error {
	m := mapping.ToModelPiecework(entry)

	query := `
		UPDATE piecework
		SET date = $2, worker_id = $3, quantity = $4, unit_price = $5, total_price = $6,
			paid_amount = $7, remaining_amount = $8, notes = $9, last_updated_at = $10
		WHERE piecework_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.PieceworkID, m.Date, m.WorkerID, m.Quantity, m.UnitPrice, m.TotalPrice,
		m.PaidAmount, m.RemainingAmount, m.Notes, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update piecework entry %s: %w", m.PieceworkID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPieceworkRepository) DeletePiecework(ctx context.Context, pieceworkID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM piecework WHERE piecework_id = $1;`, pieceworkID)
	if err != nil {
		return fmt.Errorf("failed to delete piecework entry %s: %w", pieceworkID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxDailyWageRepository struct {
	BaseRepository
}

func newPgxDailyWageRepository(pool *pgxpool.Pool) portsrepo.DailyWageRepositoryFacade {
	return &PgxDailyWageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DailyWageRepositoryFacade = (*PgxDailyWageRepository)(nil)

const dailyWageJoinQuery = `
	SELECT e.daily_wage_id, e.date, e.worker_id, e.days, e.daily_rate, e.total_price,
	       e.paid_amount, e.remaining_amount, e.notes, e.created_at, e.last_updated_at,
	       COALESCE(w.name, '') AS worker_name
	FROM daily_wages e
	LEFT JOIN workers w ON e.worker_id = w.worker_id
`

type dailyWageRow struct {
	models.DailyWage
	WorkerName string
}

func scanDailyWageRow(row pgx.CollectableRow) (dailyWageRow, error) {
	var dr dailyWageRow
	err := row.Scan(
		&dr.DailyWageID,
		&dr.Date,
		&dr.WorkerID,
		&dr.Days,
		&dr.DailyRate,
		&dr.TotalPrice,
		&dr.PaidAmount,
		&dr.RemainingAmount,
		&dr.Notes,
		&dr.CreatedAt,
		&dr.LastUpdatedAt,
		&dr.WorkerName,
	)
	return dr, err
}

func (r *PgxDailyWageRepository) SaveDailyWage(ctx context.Context, entry domain.DailyWage) error {
	m := mapping.ToModelDailyWage(entry)

	query := `
		INSERT INTO daily_wages (daily_wage_id, date, worker_id, days, daily_rate, total_price,
			paid_amount, remaining_amount, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.DailyWageID, m.Date, m.WorkerID, m.Days, m.DailyRate, m.TotalPrice,
		m.PaidAmount, m.RemainingAmount, m.Notes, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save daily wage entry %s: %w", m.DailyWageID, classifyStoreErr(err))
	}
	return nil
}

func (r *PgxDailyWageRepository) FindDailyWageByID(ctx context.Context, dailyWageID string) (*domain.DailyWage, error) {
	rows, err := r.Pool.Query(ctx, dailyWageJoinQuery+` WHERE e.daily_wage_id = $1;`, dailyWageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily wage entry %s: %w", dailyWageID, classifyStoreErr(err))
	}
	dr, err := pgx.CollectOneRow(rows, scanDailyWageRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan daily wage entry %s: %w", dailyWageID, classifyStoreErr(err))
	}

	d := mapping.ToDomainDailyWage(dr.DailyWage, dr.WorkerName)
	return &d, nil
}

func (r *PgxDailyWageRepository) ListDailyWages(ctx context.Context) ([]domain.DailyWage, error) {
	return r.collectDailyWages(ctx, dailyWageJoinQuery+` ORDER BY e.created_at DESC;`)
}

func (r *PgxDailyWageRepository) ListDailyWagesByWorker(ctx context.Context, workerID string) ([]domain.DailyWage, error) {
	return r.collectDailyWages(ctx, dailyWageJoinQuery+` WHERE e.worker_id = $1 ORDER BY e.created_at DESC;`, workerID)
}

func (r *PgxDailyWageRepository) collectDailyWages(ctx context.Context, query string, args ...any) ([]domain.DailyWage, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily wage entries: %w", classifyStoreErr(err))
	}
	drs, err := pgx.CollectRows(rows, scanDailyWageRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily wage entries: %w", classifyStoreErr(err))
	}

	res := make([]domain.DailyWage, len(drs))
	for i, dr := range drs {
		res[i] = mapping.ToDomainDailyWage(dr.DailyWage, dr.WorkerName)
	}
	return res, nil
}

func (r *PgxDailyWageRepository) UpdateDailyWage(ctx context.Context, entry domain.DailyWage) error {
	m := mapping.ToModelDailyWage(entry)

	query := `
		UPDATE daily_wages
		SET date = $2, worker_id = $3, days = $4, daily_rate = $5, total_price = $6,
			paid_amount = $7, remaining_amount = $8, notes = $9, last_updated_at = $10
		WHERE daily_wage_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.DailyWageID, m.Date, m.WorkerID, m.Days, m.DailyRate, m.TotalPrice,
		m.PaidAmount, m.RemainingAmount, m.Notes, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily wage entry %s: %w", m.DailyWageID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDailyWageRepository) DeleteDailyWage(ctx context.Context, dailyWageID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_wages WHERE daily_wage_id = $1;`, dailyWageID)
	if err != nil {
		return fmt.Errorf("failed to delete daily wage entry %s: %w", dailyWageID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
