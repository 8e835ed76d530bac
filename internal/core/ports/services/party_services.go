package services

import (
	"context"

	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/dto"
)

// SupplierSvcFacade manages supplier identity records.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// WorkerSvcFacade manages worker identity records and the per-worker
// statement view.
type WorkerSvcFacade interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error)
	GetWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID string, req dto.CreateWorkerRequest) (*domain.Worker, error)
	DeleteWorker(ctx context.Context, workerID string) error

	// GetWorkerStatement reports what a worker earned across both labor
	// ledgers next to what the payment ledger says was disbursed. The two
	// "paid" figures are surfaced side by side, not reconciled.
	GetWorkerStatement(ctx context.Context, workerID string) (*domain.WorkerStatement, error)
}
