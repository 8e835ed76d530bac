package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Capital       CapitalSvcFacade
	Summary       SummarySvcFacade
	Funding       FundingSvcFacade
	Expense       ExpenseSvcFacade
	Purchase      PurchaseSvcFacade
	Piecework     PieceworkSvcFacade
	DailyWage     DailyWageSvcFacade
	WorkerPayment WorkerPaymentSvcFacade
	Supplier      SupplierSvcFacade
	Worker        WorkerSvcFacade
}
