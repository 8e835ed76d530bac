package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", classifyStoreErr(err))
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", classifyStoreErr(err))
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to rollback transaction: %w", classifyStoreErr(err))
	}
	return nil
}

// uniqueViolationCode is the SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

// classifyStoreErr maps store failures onto the sentinel taxonomy:
// connection-class failures become apperrors.ErrUnavailable so callers can
// distinguish "store down" from query bugs, and unique violations become
// apperrors.ErrDuplicate. Class 08 is the SQLSTATE connection-exception
// family.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %v", apperrors.ErrDuplicate, err)
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
		}
	}
	return err
}
