package services

import (
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ChantierApp/site_ledger_app/internal/core/ports/services"
	"github.com/ChantierApp/site_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Capital = NewCapitalService(repos.CapitalRepo, cfg.DefaultCurrency)
	container.Summary = NewSummaryService(repos.CapitalRepo, repos.SummaryRepo)

	container.Funding = NewFundingService(repos.FundingRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo)
	container.Piecework = NewPieceworkService(repos.PieceworkRepo, repos.WorkerRepo)
	container.DailyWage = NewDailyWageService(repos.DailyWageRepo, repos.WorkerRepo)
	container.WorkerPayment = NewWorkerPaymentService(repos.WorkerPaymentRepo, repos.WorkerRepo)

	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Worker = NewWorkerService(repos.WorkerRepo, repos.PieceworkRepo, repos.DailyWageRepo, repos.WorkerPaymentRepo)

	return container
}
