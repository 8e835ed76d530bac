package repositories

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier identity records.
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier identity records.
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}

// WorkerReader defines read operations for worker identity records.
type WorkerReader interface {
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker identity records.
type WorkerWriter interface {
	SaveWorker(ctx context.Context, worker domain.Worker) error
	UpdateWorker(ctx context.Context, worker domain.Worker) error
	DeleteWorker(ctx context.Context, workerID string) error
}

// WorkerRepositoryFacade combines all worker repository interfaces.
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
