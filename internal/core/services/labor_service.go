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

// pieceworkService manages the piece-rate labor ledger. PaidAmount is fixed by
// the entry itself; the worker-payment ledger is a separate book (see the
// worker statement).
type pieceworkService struct {
	pieceworkRepo portsrepo.PieceworkRepositoryFacade
	workerRepo    portsrepo.WorkerReader
}

// NewPieceworkService creates the piecework ledger service.
func NewPieceworkService(pieceworkRepo portsrepo.PieceworkRepositoryFacade, workerRepo portsrepo.WorkerReader) portssvc.PieceworkSvcFacade {
	return &pieceworkService{
		pieceworkRepo: pieceworkRepo,
		workerRepo:    workerRepo,
	}
}

var _ portssvc.PieceworkSvcFacade = (*pieceworkService)(nil)

func (s *pieceworkService) buildPiecework(ctx context.Context, req dto.CreatePieceworkRequest) (*domain.Piecework, error) {
	if err := requirePositive("quantity", req.Quantity); err != nil {
		return nil, err
	}
	if err := requireNonNegative("unitPrice", req.UnitPrice); err != nil {
		return nil, err
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	totalPrice := req.Quantity.Mul(req.UnitPrice)
	remaining, err := derivePaidSplit(totalPrice, req.PaidAmount)
	if err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: worker %s does not exist", apperrors.ErrValidation, req.WorkerID)
		}
		return nil, fmt.Errorf("failed to check worker for piecework: %w", err)
	}

	return &domain.Piecework{
		Date:            date,
		WorkerID:        worker.WorkerID,
		WorkerName:      worker.Name,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		TotalPrice:      totalPrice,
		PaidAmount:      req.PaidAmount,
		RemainingAmount: remaining,
		Notes:           req.Notes,
	}, nil
}

func (s *pieceworkService) CreatePiecework(ctx context.Context, req dto.CreatePieceworkRequest) (*domain.Piecework, error) {
	entry, err := s.buildPiecework(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.PieceworkID = uuid.NewString()
	entry.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.pieceworkRepo.SavePiecework(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to create piecework in service: %w", err)
	}
	return entry, nil
}

func (s *pieceworkService) GetPieceworkByID(ctx context.Context, pieceworkID string) (*domain.Piecework, error) {
	entry, err := s.pieceworkRepo.FindPieceworkByID(ctx, pieceworkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get piecework in service: %w", err)
	}
	return entry, nil
}

func (s *pieceworkService) ListPiecework(ctx context.Context) ([]domain.Piecework, error) {
	entries, err := s.pieceworkRepo.ListPiecework(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list piecework in service: %w", err)
	}
	if entries == nil {
		return []domain.Piecework{}, nil
	}
	return entries, nil
}

func (s *pieceworkService) UpdatePiecework(ctx context.Context, pieceworkID string, req dto.CreatePieceworkRequest) (*domain.Piecework, error) {
	existing, err := s.pieceworkRepo.FindPieceworkByID(ctx, pieceworkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load piecework for update: %w", err)
	}

	entry, err := s.buildPiecework(ctx, req)
	if err != nil {
		return nil, err
	}
	entry.PieceworkID = existing.PieceworkID
	entry.AuditFields = existing.AuditFields
	entry.LastUpdatedAt = time.Now()

	if err := s.pieceworkRepo.UpdatePiecework(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update piecework in service: %w", err)
	}
	return entry, nil
}

func (s *pieceworkService) DeletePiecework(ctx context.Context, pieceworkID string) error {
	if err := s.pieceworkRepo.DeletePiecework(ctx, pieceworkID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete piecework in service: %w", err)
	}
	return nil
}

// dailyWageService manages the daily-rate labor ledger.
type dailyWageService struct {
	dailyWageRepo portsrepo.DailyWageRepositoryFacade
	workerRepo    portsrepo.WorkerReader
}

// NewDailyWageService creates the daily-wage ledger service.
func NewDailyWageService(dailyWageRepo portsrepo.DailyWageRepositoryFacade, workerRepo portsrepo.WorkerReader) portssvc.DailyWageSvcFacade {
	return &dailyWageService{
		dailyWageRepo: dailyWageRepo,
		workerRepo:    workerRepo,
	}
}

var _ portssvc.DailyWageSvcFacade = (*dailyWageService)(nil)

func (s *dailyWageService) buildDailyWage(ctx context.Context, req dto.CreateDailyWageRequest) (*domain.DailyWage, error) {
	if err := requirePositive("days", req.Days); err != nil {
		return nil, err
	}
	if err := requireNonNegative("dailyRate", req.DailyRate); err != nil {
		return nil, err
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	totalPrice := req.Days.Mul(req.DailyRate)
	remaining, err := derivePaidSplit(totalPrice, req.PaidAmount)
	if err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: worker %s does not exist", apperrors.ErrValidation, req.WorkerID)
		}
		return nil, fmt.Errorf("failed to check worker for daily wage: %w", err)
	}

	return &domain.DailyWage{
		Date:            date,
		WorkerID:        worker.WorkerID,
		WorkerName:      worker.Name,
		Days:            req.Days,
		DailyRate:       req.DailyRate,
		TotalPrice:      totalPrice,
		PaidAmount:      req.PaidAmount,
		RemainingAmount: remaining,
		Notes:           req.Notes,
	}, nil
}

func (s *dailyWageService) CreateDailyWage(ctx context.Context, req dto.CreateDailyWageRequest) (*domain.DailyWage, error) {
	entry, err := s.buildDailyWage(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.DailyWageID = uuid.NewString()
	entry.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.dailyWageRepo.SaveDailyWage(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to create daily wage in service: %w", err)
	}
	return entry, nil
}

func (s *dailyWageService) GetDailyWageByID(ctx context.Context, dailyWageID string) (*domain.DailyWage, error) {
	entry, err := s.dailyWageRepo.FindDailyWageByID(ctx, dailyWageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get daily wage in service: %w", err)
	}
	return entry, nil
}

func (s *dailyWageService) ListDailyWages(ctx context.Context) ([]domain.DailyWage, error) {
	entries, err := s.dailyWageRepo.ListDailyWages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily wages in service: %w", err)
	}
	if entries == nil {
		return []domain.DailyWage{}, nil
	}
	return entries, nil
}

func (s *dailyWageService) UpdateDailyWage(ctx context.Context, dailyWageID string, req dto.CreateDailyWageRequest) (*domain.DailyWage, error) {
	existing, err := s.dailyWageRepo.FindDailyWageByID(ctx, dailyWageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load daily wage for update: %w", err)
	}

	entry, err := s.buildDailyWage(ctx, req)
	if err != nil {
		return nil, err
	}
	entry.DailyWageID = existing.DailyWageID
	entry.AuditFields = existing.AuditFields
	entry.LastUpdatedAt = time.Now()

	if err := s.dailyWageRepo.UpdateDailyWage(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update daily wage in service: %w", err)
	}
	return entry, nil
}

func (s *dailyWageService) DeleteDailyWage(ctx context.Context, dailyWageID string) error {
	if err := s.dailyWageRepo.DeleteDailyWage(ctx, dailyWageID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete daily wage in service: %w", err)
	}
	return nil
}
