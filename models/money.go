package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a monetary form value to a decimal.
// Empty, non-numeric and negative values are rejected.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, NewValidationError(field, "el monto es obligatorio")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(field, "el monto debe ser numérico")
	}
	if amount.IsNegative() {
		return decimal.Zero, NewValidationError(field, "el monto no puede ser negativo")
	}
	return amount.Round(2), nil
}

// FormatSoles renders an amount as "S/ 150.50"
func FormatSoles(amount decimal.Decimal) string {
	return "S/ " + amount.StringFixed(2)
}
