package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToModelWorkerPayment converts a domain WorkerPayment to a model WorkerPayment.
func ToModelWorkerPayment(d domain.WorkerPayment) models.WorkerPayment {
	return models.WorkerPayment{
		PaymentID:   d.PaymentID,
		Date:        d.Date,
		WorkerID:    d.WorkerID,
		Amount:      d.Amount,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkerPayment converts a model WorkerPayment plus its joined worker name.
func ToDomainWorkerPayment(m models.WorkerPayment, workerName string) domain.WorkerPayment {
	if workerName == "" {
		workerName = domain.DeletedReferencePlaceholder
	}
	return domain.WorkerPayment{
		PaymentID:   m.PaymentID,
		Date:        m.Date,
		WorkerID:    m.WorkerID,
		WorkerName:  workerName,
		Amount:      m.Amount,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
