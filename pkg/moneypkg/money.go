// Package moneypkg provides common money display formatting for the app.
package moneypkg

import "github.com/shopspring/decimal"

// Format renders an amount in accounting style with two decimal places:
// $12.34 for credits and $(12.34) for debits.
func Format(amount decimal.Decimal) string {
	if amount.Sign() < 0 {
		return "$(" + amount.Neg().StringFixed(2) + ")"
	}

	return "$" + amount.StringFixed(2)
}
