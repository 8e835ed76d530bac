package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToModelPiecework converts a domain Piecework to a model Piecework.
func ToModelPiecework(d domain.Piecework) models.Piecework {
	return models.Piecework{
		PieceworkID:     d.PieceworkID,
		Date:            d.Date,
		WorkerID:        d.WorkerID,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		TotalPrice:      d.TotalPrice,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPiecework converts a model Piecework plus its joined worker name.
func ToDomainPiecework(m models.Piecework, workerName string) domain.Piecework {
	if workerName == "" {
		workerName = domain.DeletedReferencePlaceholder
	}
	return domain.Piecework{
		PieceworkID:     m.PieceworkID,
		Date:            m.Date,
		WorkerID:        m.WorkerID,
		WorkerName:      workerName,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TotalPrice:      m.TotalPrice,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDailyWage converts a domain DailyWage to a model DailyWage.
func ToModelDailyWage(d domain.DailyWage) models.DailyWage {
	return models.DailyWage{
		DailyWageID:     d.DailyWageID,
		Date:            d.Date,
		WorkerID:        d.WorkerID,
		Days:            d.Days,
		DailyRate:       d.DailyRate,
		TotalPrice:      d.TotalPrice,
		PaidAmount:      d.PaidAmount,
		RemainingAmount: d.RemainingAmount,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyWage converts a model DailyWage plus its joined worker name.
func ToDomainDailyWage(m models.DailyWage, workerName string) domain.DailyWage {
	if workerName == "" {
		workerName = domain.DeletedReferencePlaceholder
	}
	return domain.DailyWage{
		DailyWageID:     m.DailyWageID,
		Date:            m.Date,
		WorkerID:        m.WorkerID,
		WorkerName:      workerName,
		Days:            m.Days,
		DailyRate:       m.DailyRate,
		TotalPrice:      m.TotalPrice,
		PaidAmount:      m.PaidAmount,
		RemainingAmount: m.RemainingAmount,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
