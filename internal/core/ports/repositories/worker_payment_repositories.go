package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkerPaymentReader defines read operations for the worker-payment ledger.
type WorkerPaymentReader interface {
	FindWorkerPaymentByID(ctx context.Context, paymentID string) (*domain.WorkerPayment, error)
	ListWorkerPayments(ctx context.Context) ([]domain.WorkerPayment, error)

	// SumPaymentsByWorker returns the total disbursed to one worker as a
	// single server-side aggregate.
	SumPaymentsByWorker(ctx context.Context, workerID string) (decimal.Decimal, error)
}

// WorkerPaymentWriter defines write operations for the worker-payment ledger.
type WorkerPaymentWriter interface {
	SaveWorkerPayment(ctx context.Context, payment domain.WorkerPayment) error
	UpdateWorkerPayment(ctx context.Context, payment domain.WorkerPayment) error
	DeleteWorkerPayment(ctx context.Context, paymentID string) error
}

// WorkerPaymentRepositoryFacade combines all worker-payment repository interfaces.
type WorkerPaymentRepositoryFacade interface {
	WorkerPaymentReader
	WorkerPaymentWriter
}
