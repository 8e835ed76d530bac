package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToModelFunding converts a domain Funding to a model Funding
func ToModelFunding(d domain.Funding) models.Funding {
	return models.Funding{
		FundingID:     d.FundingID,
		Amount:        d.Amount,
		Date:          d.Date,
		PaymentMethod: models.PaymentMethod(d.PaymentMethod),
		Reference:     d.Reference,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFunding converts a model Funding to a domain Funding
func ToDomainFunding(m models.Funding) domain.Funding {
	return domain.Funding{
		FundingID:     m.FundingID,
		Amount:        m.Amount,
		Date:          m.Date,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Reference:     m.Reference,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFundingSlice converts model funding entries to domain entries
func ToDomainFundingSlice(ms []models.Funding) []domain.Funding {
	res := make([]domain.Funding, len(ms))
	for i, m := range ms {
		res[i] = ToDomainFunding(m)
	}
	return res
}
