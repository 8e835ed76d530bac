package services

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
)

// FundingSvcFacade manages the funding ledger.
type FundingSvcFacade interface {
	CreateFunding(ctx context.Context, req dto.CreateFundingRequest) (*domain.Funding, error)
	GetFundingByID(ctx context.Context, fundingID string) (*domain.Funding, error)
	ListFunding(ctx context.Context) ([]domain.Funding, error)
	UpdateFunding(ctx context.Context, fundingID string, req dto.CreateFundingRequest) (*domain.Funding, error)
	DeleteFunding(ctx context.Context, fundingID string) error
}

// ExpenseSvcFacade manages the expense ledger.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// PurchaseSvcFacade manages the purchase ledger. Create/update derive
// totalPrice and remainingAmount server-side.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID string, req dto.CreatePurchaseRequest) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PieceworkSvcFacade manages the piecework labor ledger.
type PieceworkSvcFacade interface {
	CreatePiecework(ctx context.Context, req dto.CreatePieceworkRequest) (*domain.Piecework, error)
	GetPieceworkByID(ctx context.Context, pieceworkID string) (*domain.Piecework, error)
	ListPiecework(ctx context.Context) ([]domain.Piecework, error)
	UpdatePiecework(ctx context.Context, pieceworkID string, req dto.CreatePieceworkRequest) (*domain.Piecework, error)
	DeletePiecework(ctx context.Context, pieceworkID string) error
}

// DailyWageSvcFacade manages the daily-wage labor ledger.
type DailyWageSvcFacade interface {
	CreateDailyWage(ctx context.Context, req dto.CreateDailyWageRequest) (*domain.DailyWage, error)
	GetDailyWageByID(ctx context.Context, dailyWageID string) (*domain.DailyWage, error)
	ListDailyWages(ctx context.Context) ([]domain.DailyWage, error)
	UpdateDailyWage(ctx context.Context, dailyWageID string, req dto.CreateDailyWageRequest) (*domain.DailyWage, error)
	DeleteDailyWage(ctx context.Context, dailyWageID string) error
}

// WorkerPaymentSvcFacade manages the worker-payment ledger.
type WorkerPaymentSvcFacade interface {
	CreateWorkerPayment(ctx context.Context, req dto.CreateWorkerPaymentRequest) (*domain.WorkerPayment, error)
	GetWorkerPaymentByID(ctx context.Context, paymentID string) (*domain.WorkerPayment, error)
	ListWorkerPayments(ctx context.Context) ([]domain.WorkerPayment, error)
	UpdateWorkerPayment(ctx context.Context, paymentID string, req dto.CreateWorkerPaymentRequest) (*domain.WorkerPayment, error)
	DeleteWorkerPayment(ctx context.Context, paymentID string) error
}
