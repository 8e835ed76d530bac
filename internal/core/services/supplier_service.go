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

type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates the supplier identity service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier in service: %w", err)
	}
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get supplier in service: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers in service: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	existing, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load supplier for update: %w", err)
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.Phone = req.Phone
	existing.LastUpdatedAt = time.Now()

	if err := s.supplierRepo.UpdateSupplier(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update supplier in service: %w", err)
	}
	return existing, nil
}

// DeleteSupplier removes the identity record only. Purchases referencing it
// keep their amounts and keep counting toward every total; their display name
// degrades to the deleted placeholder.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete supplier in service: %w", err)
	}
	return nil
}
