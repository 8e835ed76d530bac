package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates the expense ledger service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) buildExpense(req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Expense{
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Notes:       req.Notes,
	}, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.buildExpense(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense.ExpenseID = uuid.NewString()
	expense.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get expense in service: %w", err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	entries, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}
	if entries == nil {
		return []domain.Expense{}, nil
	}
	return entries, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	existing, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load expense for update: %w", err)
	}

	expense, err := s.buildExpense(req)
	if err != nil {
		return nil, err
	}
	expense.ExpenseID = existing.ExpenseID
	expense.AuditFields = existing.AuditFields
	expense.LastUpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense in service: %w", err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete expense in service: %w", err)
	}
	return nil
}
