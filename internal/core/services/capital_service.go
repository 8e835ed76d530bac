package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
)

// capitalService is the capital guard. All singleton and lock invariants are
// enforced by the repository's atomic upsert; this layer adds validation and
// the currency default.
type capitalService struct {
	capitalRepo     portsrepo.CapitalRepositoryFacade
	defaultCurrency string
}

// NewCapitalService creates the capital guard service.
func NewCapitalService(capitalRepo portsrepo.CapitalRepositoryFacade, defaultCurrency string) portssvc.CapitalSvcFacade {
	return &capitalService{
		capitalRepo:     capitalRepo,
		defaultCurrency: defaultCurrency,
	}
}

var _ portssvc.CapitalSvcFacade = (*capitalService)(nil)

func (s *capitalService) GetCapital(ctx context.Context) (*domain.Capital, error) {
	capital, err := s.capitalRepo.FindCapital(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get capital in service: %w", err)
	}
	return capital, nil
}

func (s *capitalService) SetOrUpdateCapital(ctx context.Context, req dto.SetCapitalRequest) (*domain.Capital, error) {
	if err := requireNonNegative("openingBalance", req.OpeningBalance); err != nil {
		return nil, err
	}
	openingDate, err := parseEntryDate(req.OpeningDate)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	capital, err := s.capitalRepo.UpsertCapital(ctx, req.OpeningBalance, openingDate, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to set or update capital in service: %w", err)
	}
	return capital, nil
}

func (s *capitalService) LockCapital(ctx context.Context) (*domain.Capital, error) {
	capital, err := s.capitalRepo.LockCapital(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock capital in service: %w", err)
	}
	return capital, nil
}
