package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToDomainCapital converts a model Capital to a domain Capital
func ToDomainCapital(m models.Capital) domain.Capital {
	return domain.Capital{
		CapitalID:      m.CapitalID,
		OpeningBalance: m.OpeningBalance,
		Currency:       m.Currency,
		OpeningDate:    m.OpeningDate,
		IsLocked:       m.IsLocked,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
