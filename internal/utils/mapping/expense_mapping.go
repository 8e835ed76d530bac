package mapping

import (
	"github.com/ChantierApp/site_ledger_app/internal/core/domain"
	"github.com/ChantierApp/site_ledger_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Date:        d.Date,
		Description: d.Description,
		Amount:      d.Amount,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Date:        m.Date,
		Description: m.Description,
		Amount:      m.Amount,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts model expenses to domain expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	res := make([]domain.Expense, len(ms))
	for i, m := range ms {
		res[i] = ToDomainExpense(m)
	}
	return res
}
