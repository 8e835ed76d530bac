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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for the expense ledger.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, date, description, amount, notes, created_at, last_updated_at`

func scanExpenseRow(row pgx.CollectableRow) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Date,
		m.Description,
		m.Amount,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, classifyStoreErr(err))
	}
	return nil
}

// FindExpenseByID retrieves a single expense.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %s: %w", expenseID, classifyStoreErr(err))
	}
	m, err := pgx.CollectOneRow(rows, scanExpenseRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan expense %s: %w", expenseID, classifyStoreErr(err))
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// ListExpenses retrieves all expenses, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", classifyStoreErr(err))
	}
	ms, err := pgx.CollectRows(rows, scanExpenseRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", classifyStoreErr(err))
	}

	return mapping.ToDomainExpenseSlice(ms), nil
}

// UpdateExpense overwrites an existing expense's own fields.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET date = $2, description = $3, amount = $4, notes = $5, last_updated_at = $6
		WHERE expense_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Date,
		m.Description,
		m.Amount,
		m.Notes,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, classifyStoreErr(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
