package usecases

import (
	"github.com/shopspring/decimal"

	domainerrors "fuelpass.backend/internal/domain/errors"
)

// parseAmount parses a monetary input string. Amounts must be positive
// and exactly representable at two decimal places.
func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domainerrors.BadRequest(field + " is not a valid amount")
	}
	if !d.IsPositive() {
		return decimal.Zero, domainerrors.BadRequest(field + " must be positive")
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, domainerrors.BadRequest(field + " supports at most two decimal places")
	}
	return d, nil
}
