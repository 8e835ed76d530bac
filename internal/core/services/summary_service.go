package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
)

// summaryService is the aggregation engine. It owns no data and never mutates
// a ledger; every view is recomputed from store aggregates on each call.
type summaryService struct {
	capitalRepo portsrepo.CapitalReader
	summaryRepo portsrepo.SummaryRepository
}

// NewSummaryService creates the aggregation engine service.
func NewSummaryService(capitalRepo portsrepo.CapitalReader, summaryRepo portsrepo.SummaryRepository) portssvc.SummarySvcFacade {
	return &summaryService{
		capitalRepo: capitalRepo,
		summaryRepo: summaryRepo,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetCapitalSummary fails with ErrNotFound when capital is unset; the
// dashboard view below tolerates that state instead.
func (s *summaryService) GetCapitalSummary(ctx context.Context) (*domain.CapitalSummary, error) {
	capital, err := s.capitalRepo.FindCapital(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read capital for summary: %w", err)
	}

	totalFunding, err := s.summaryRepo.SumFunding(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum funding for capital summary: %w", err)
	}

	return &domain.CapitalSummary{
		OpeningBalance: capital.OpeningBalance,
		TotalFunding:   totalFunding,
		TotalCapital:   capital.OpeningBalance.Add(totalFunding),
		Currency:       capital.Currency,
	}, nil
}

// GetDashboardSummary folds one consistent snapshot of every ledger into the
// balance formula:
//
//	currentBalance = totalCapital - totalExpenses - paidPurchases - paidLabor
//
// Any store error aborts the whole computation; partial totals are never
// returned.
func (s *summaryService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	totals, err := s.summaryRepo.GetLedgerTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger totals for dashboard: %w", err)
	}

	totalCapital := totals.OpeningBalance.Add(totals.TotalFunding)

	totalLabor := totals.TotalPiecework.Add(totals.TotalDailyWages)
	totalPaidLabor := totals.TotalPaidPiecework.Add(totals.TotalPaidDailyWages)

	currentBalance := totalCapital.
		Sub(totals.TotalExpenses).
		Sub(totals.TotalPaidPurchases).
		Sub(totalPaidLabor)

	return &domain.DashboardSummary{
		Capital: domain.CapitalSection{
			Total:          totalCapital,
			OpeningBalance: totals.OpeningBalance,
			Funding:        totals.TotalFunding,
		},
		Expenses: totals.TotalExpenses,
		Purchases: domain.PaidSection{
			Total:     totals.TotalPurchases,
			Paid:      totals.TotalPaidPurchases,
			Remaining: totals.TotalRemainingPurchases,
		},
		Labor: domain.PaidSection{
			Total:     totalLabor,
			Paid:      totalPaidLabor,
			Remaining: totalLabor.Sub(totalPaidLabor),
		},
		Counts: domain.CountsSection{
			Suppliers: totals.SupplierCount,
			Workers:   totals.WorkerCount,
		},
		CurrentBalance: currentBalance,
	}, nil
}
