package services

import (
	"fmt"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// entryDateFormat is the wire format for ledger entry dates.
const entryDateFormat = "2006-01-02"

// parseEntryDate parses a request date, wrapping failures as validation errors.
// Binding already enforces the format; this guards non-HTTP callers.
func parseEntryDate(value string) (time.Time, error) {
	t, err := time.Parse(entryDateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// requirePositive rejects zero or negative monetary fields.
func requirePositive(field string, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, field)
	}
	return nil
}

// requireNonNegative rejects negative monetary fields.
func requireNonNegative(field string, amount decimal.Decimal) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return nil
}

// derivePaidSplit checks paid against total and returns the remaining amount.
// Overpayment is rejected so the stored remainder can never go negative.
func derivePaidSplit(total, paid decimal.Decimal) (decimal.Decimal, error) {
	if err := requireNonNegative("paidAmount", paid); err != nil {
		return decimal.Zero, err
	}
	if paid.GreaterThan(total) {
		return decimal.Zero, fmt.Errorf("%w: paidAmount %s exceeds total price %s", apperrors.ErrValidation, paid, total)
	}
	return total.Sub(paid), nil
}
