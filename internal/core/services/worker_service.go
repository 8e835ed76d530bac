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
	"github.com/shopspring/decimal"
)

type workerService struct {
	workerRepo    portsrepo.WorkerRepositoryFacade
	pieceworkRepo portsrepo.PieceworkReader
	dailyWageRepo portsrepo.DailyWageReader
	paymentRepo   portsrepo.WorkerPaymentReader
}

// NewWorkerService creates the worker identity service.
func NewWorkerService(
	workerRepo portsrepo.WorkerRepositoryFacade,
	pieceworkRepo portsrepo.PieceworkReader,
	dailyWageRepo portsrepo.DailyWageReader,
	paymentRepo portsrepo.WorkerPaymentReader,
) portssvc.WorkerSvcFacade {
	return &workerService{
		workerRepo:    workerRepo,
		pieceworkRepo: pieceworkRepo,
		dailyWageRepo: dailyWageRepo,
		paymentRepo:   paymentRepo,
	}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	now := time.Now()
	worker := domain.Worker{
		WorkerID:    uuid.NewString(),
		Name:        req.Name,
		Profession:  req.Profession,
		Address:     req.Address,
		Phone:       req.Phone,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		return nil, fmt.Errorf("failed to create worker in service: %w", err)
	}
	return &worker, nil
}

func (s *workerService) GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get worker in service: %w", err)
	}
	return worker, nil
}

func (s *workerService) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	workers, err := s.workerRepo.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers in service: %w", err)
	}
	if workers == nil {
		return []domain.Worker{}, nil
	}
	return workers, nil
}

func (s *workerService) UpdateWorker(ctx context.Context, workerID string, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	existing, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load worker for update: %w", err)
	}

	existing.Name = req.Name
	existing.Profession = req.Profession
	existing.Address = req.Address
	existing.Phone = req.Phone
	existing.LastUpdatedAt = time.Now()

	if err := s.workerRepo.UpdateWorker(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update worker in service: %w", err)
	}
	return existing, nil
}

// DeleteWorker removes the identity record only; labor entries and payments
// referencing it remain and keep counting toward every total.
func (s *workerService) DeleteWorker(ctx context.Context, workerID string) error {
	if err := s.workerRepo.DeleteWorker(ctx, workerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete worker in service: %w", err)
	}
	return nil
}

// GetWorkerStatement reports both "paid" books for one worker: the paid
// amounts recorded on labor entries and the independent payment ledger. The
// two figures can legitimately diverge; neither is adjusted to match the
// other.
func (s *workerService) GetWorkerStatement(ctx context.Context, workerID string) (*domain.WorkerStatement, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load worker for statement: %w", err)
	}

	piecework, err := s.pieceworkRepo.ListPieceworkByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list piecework for statement: %w", err)
	}
	dailyWages, err := s.dailyWageRepo.ListDailyWagesByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily wages for statement: %w", err)
	}
	totalPayments, err := s.paymentRepo.SumPaymentsByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments for statement: %w", err)
	}

	totalEarned := decimal.Zero
	paidOnEntries := decimal.Zero
	for _, p := range piecework {
		totalEarned = totalEarned.Add(p.TotalPrice)
		paidOnEntries = paidOnEntries.Add(p.PaidAmount)
	}
	for _, d := range dailyWages {
		totalEarned = totalEarned.Add(d.TotalPrice)
		paidOnEntries = paidOnEntries.Add(d.PaidAmount)
	}

	return &domain.WorkerStatement{
		Worker:             *worker,
		TotalEarned:        totalEarned,
		PaidOnEntries:      paidOnEntries,
		RemainingOnEntries: totalEarned.Sub(paidOnEntries),
		TotalPayments:      totalPayments,
	}, nil
}
