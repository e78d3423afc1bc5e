package moneypkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "Zero", amount: "0", want: "$0.00"},
		{name: "Credit", amount: "100", want: "$100.00"},
		{name: "CreditCents", amount: "60.5", want: "$60.50"},
		{name: "Debit", amount: "-40", want: "$(40.00)"},
		{name: "DebitCents", amount: "-0.01", want: "$(0.01)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Format(decimal.RequireFromString(tc.amount))
			require.Equal(t, tc.want, got)
		})
	}
}
