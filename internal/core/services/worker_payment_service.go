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

// workerPaymentService manages the disbursement ledger. Saving a payment does
// not touch any labor entry's paidAmount; the two books are kept independent.
type workerPaymentService struct {
	paymentRepo portsrepo.WorkerPaymentRepositoryFacade
	workerRepo  portsrepo.WorkerReader
}

// NewWorkerPaymentService creates the worker-payment ledger service.
func NewWorkerPaymentService(paymentRepo portsrepo.WorkerPaymentRepositoryFacade, workerRepo portsrepo.WorkerReader) portssvc.WorkerPaymentSvcFacade {
	return &workerPaymentService{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
	}
}

var _ portssvc.WorkerPaymentSvcFacade = (*workerPaymentService)(nil)

func (s *workerPaymentService) buildPayment(ctx context.Context, req dto.CreateWorkerPaymentRequest) (*domain.WorkerPayment, error) {
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: worker %s does not exist", apperrors.ErrValidation, req.WorkerID)
		}
		return nil, fmt.Errorf("failed to check worker for payment: %w", err)
	}

	return &domain.WorkerPayment{
		Date:       date,
		WorkerID:   worker.WorkerID,
		WorkerName: worker.Name,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}, nil
}

func (s *workerPaymentService) CreateWorkerPayment(ctx context.Context, req dto.CreateWorkerPaymentRequest) (*domain.WorkerPayment, error) {
	payment, err := s.buildPayment(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment.PaymentID = uuid.NewString()
	payment.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.paymentRepo.SaveWorkerPayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to create worker payment in service: %w", err)
	}
	return payment, nil
}

func (s *workerPaymentService) GetWorkerPaymentByID(ctx context.Context, paymentID string) (*domain.WorkerPayment, error) {
	payment, err := s.paymentRepo.FindWorkerPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get worker payment in service: %w", err)
	}
	return payment, nil
}

func (s *workerPaymentService) ListWorkerPayments(ctx context.Context) ([]domain.WorkerPayment, error) {
	entries, err := s.paymentRepo.ListWorkerPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker payments in service: %w", err)
	}
	if entries == nil {
		return []domain.WorkerPayment{}, nil
	}
	return entries, nil
}

func (s *workerPaymentService) UpdateWorkerPayment(ctx context.Context, paymentID string, req dto.CreateWorkerPaymentRequest) (*domain.WorkerPayment, error) {
	existing, err := s.paymentRepo.FindWorkerPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load worker payment for update: %w", err)
	}

	payment, err := s.buildPayment(ctx, req)
	if err != nil {
		return nil, err
	}
	payment.PaymentID = existing.PaymentID
	payment.AuditFields = existing.AuditFields
	payment.LastUpdatedAt = time.Now()

	if err := s.paymentRepo.UpdateWorkerPayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to update worker payment in service: %w", err)
	}
	return payment, nil
}

func (s *workerPaymentService) DeleteWorkerPayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeleteWorkerPayment(ctx, paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete worker payment in service: %w", err)
	}
	return nil
}
