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

type fundingService struct {
	fundingRepo portsrepo.FundingRepositoryFacade
}

// NewFundingService creates the funding ledger service.
func NewFundingService(fundingRepo portsrepo.FundingRepositoryFacade) portssvc.FundingSvcFacade {
	return &fundingService{fundingRepo: fundingRepo}
}

var _ portssvc.FundingSvcFacade = (*fundingService)(nil)

func (s *fundingService) buildFunding(req dto.CreateFundingRequest) (*domain.Funding, error) {
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}
	return &domain.Funding{
		Amount:        req.Amount,
		Date:          date,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Reference:     req.Reference,
		Notes:         req.Notes,
	}, nil
}

func (s *fundingService) CreateFunding(ctx context.Context, req dto.CreateFundingRequest) (*domain.Funding, error) {
	funding, err := s.buildFunding(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	funding.FundingID = uuid.NewString()
	funding.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.fundingRepo.SaveFunding(ctx, *funding); err != nil {
		return nil, fmt.Errorf("failed to create funding in service: %w", err)
	}
	return funding, nil
}

func (s *fundingService) GetFundingByID(ctx context.Context, fundingID string) (*domain.Funding, error) {
	funding, err := s.fundingRepo.FindFundingByID(ctx, fundingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get funding in service: %w", err)
	}
	return funding, nil
}

func (s *fundingService) ListFunding(ctx context.Context) ([]domain.Funding, error) {
	entries, err := s.fundingRepo.ListFunding(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list funding in service: %w", err)
	}
	if entries == nil {
		return []domain.Funding{}, nil
	}
	return entries, nil
}

func (s *fundingService) UpdateFunding(ctx context.Context, fundingID string, req dto.CreateFundingRequest) (*domain.Funding, error) {
	existing, err := s.fundingRepo.FindFundingByID(ctx, fundingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load funding for update: %w", err)
	}

	funding, err := s.buildFunding(req)
	if err != nil {
		return nil, err
	}
	funding.FundingID = existing.FundingID
	funding.AuditFields = existing.AuditFields
	funding.LastUpdatedAt = time.Now()

	if err := s.fundingRepo.UpdateFunding(ctx, *funding); err != nil {
		return nil, fmt.Errorf("failed to update funding in service: %w", err)
	}
	return funding, nil
}

func (s *fundingService) DeleteFunding(ctx context.Context, fundingID string) error {
	if err := s.fundingRepo.DeleteFunding(ctx, fundingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete funding in service: %w", err)
	}
	return nil
}
