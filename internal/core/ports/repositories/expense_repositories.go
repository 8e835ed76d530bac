package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// ExpenseReader defines read operations for the expense ledger.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for the expense ledger.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
