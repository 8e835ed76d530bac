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

type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierReader
}

// NewPurchaseService creates the purchase ledger service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierReader) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// buildPurchase validates the request and derives totalPrice/remainingAmount.
// A client-sent totalPrice that disagrees with quantity*unitPrice is rejected
// rather than silently overwritten.
func (s *purchaseService) buildPurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
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
	if req.TotalPrice != nil && !req.TotalPrice.Equal(totalPrice) {
		return nil, fmt.Errorf("%w: totalPrice %s does not match quantity * unitPrice (%s)", apperrors.ErrValidation, req.TotalPrice, totalPrice)
	}

	remaining, err := derivePaidSplit(totalPrice, req.PaidAmount)
	if err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: supplier %s does not exist", apperrors.ErrValidation, req.SupplierID)
		}
		return nil, fmt.Errorf("failed to check supplier for purchase: %w", err)
	}

	return &domain.Purchase{
		Date:            date,
		ProductName:     req.ProductName,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		TotalPrice:      totalPrice,
		SupplierID:      supplier.SupplierID,
		SupplierName:    supplier.Name,
		PaidAmount:      req.PaidAmount,
		RemainingAmount: remaining,
	}, nil
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	purchase, err := s.buildPurchase(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase.PurchaseID = uuid.NewString()
	purchase.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.purchaseRepo.SavePurchase(ctx, *purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase in service: %w", err)
	}
	return purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get purchase in service: %w", err)
	}
	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	entries, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases in service: %w", err)
	}
	if entries == nil {
		return []domain.Purchase{}, nil
	}
	return entries, nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	existing, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load purchase for update: %w", err)
	}

	purchase, err := s.buildPurchase(ctx, req)
	if err != nil {
		return nil, err
	}
	purchase.PurchaseID = existing.PurchaseID
	purchase.AuditFields = existing.AuditFields
	purchase.LastUpdatedAt = time.Now()

	if err := s.purchaseRepo.UpdatePurchase(ctx, *purchase); err != nil {
		return nil, fmt.Errorf("failed to update purchase in service: %w", err)
	}
	return purchase, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete purchase in service: %w", err)
	}
	return nil
}
