package model

import "github.com/shopspring/decimal"

// MoneyPlaces is the precision amounts are stored and shown with.
const MoneyPlaces = 2

// CheckAmount rejects negative amounts and amounts finer than MoneyPlaces,
// so a stored amount always equals its displayed form.
func CheckAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return Invalidf("%s must not be negative", field)
	}
	if !d.Equal(d.Truncate(MoneyPlaces)) {
		return Invalidf("%s %s has more than %d decimal places", field, d, MoneyPlaces)
	}
	return nil
}
