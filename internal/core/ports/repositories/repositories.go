package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CapitalRepo       CapitalRepositoryFacade
	FundingRepo       FundingRepositoryFacade
	ExpenseRepo       ExpenseRepositoryFacade
	PurchaseRepo      PurchaseRepositoryFacade
	PieceworkRepo     PieceworkRepositoryFacade
	DailyWageRepo     DailyWageRepositoryFacade
	WorkerPaymentRepo WorkerPaymentRepositoryFacade
	SupplierRepo      SupplierRepositoryFacade
	WorkerRepo        WorkerRepositoryFacade
	SummaryRepo       SummaryRepository
}
