package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		Address:     d.Address,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts model suppliers to domain suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	res := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		res[i] = ToDomainSupplier(m)
	}
	return res
}

// ToModelWorker converts a domain Worker to a model Worker
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:    d.WorkerID,
		Name:        d.Name,
		Profession:  d.Profession,
		Address:     d.Address,
		Phone:       d.Phone,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorker converts a model Worker to a domain Worker
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:    m.WorkerID,
		Name:        m.Name,
		Profession:  m.Profession,
		Address:     m.Address,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkerSlice converts model workers to domain workers
func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	res := make([]domain.Worker, len(ms))
	for i, m := range ms {
		res[i] = ToDomainWorker(m)
	}
	return res
}
