package bank

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lime5005/atm/pkg/randompkg"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestBalanceIsSumOfPostings(t *testing.T) {
	_, user, _ := onboardTestUser(t)
	account := user.Accounts()[0]

	want := decimal.Zero

	for i := 0; i < 20; i++ {
		amount := decimalFromString(t, randompkg.MoneyAmountBetween(-100, 100))
		account.Record(amount, "")
		want = want.Add(amount)
	}

	require.True(t, account.Balance().Equal(want),
		"Balance() = %s, want %s", account.Balance(), want)
}

func TestRecordStampsTransaction(t *testing.T) {
	_, user, _ := onboardTestUser(t)
	account := user.Accounts()[0]

	amount := decimalFromString(t, "100.00")
	tx := account.Record(amount, "init")

	require.Equal(t, account.ID(), tx.AccountID)
	require.Equal(t, "init", tx.Memo)
	require.True(t, tx.Amount.Equal(amount))
	require.NotZero(t, tx.ID)
	require.False(t, tx.CreatedAt.IsZero())
	require.Equal(t, 1, account.TransactionCount())
}

func TestHistoryNewestFirst(t *testing.T) {
	_, user, _ := onboardTestUser(t)
	account := user.Accounts()[0]

	first := account.Record(decimalFromString(t, "10"), "first")
	second := account.Record(decimalFromString(t, "-5"), "second")
	third := account.Record(decimalFromString(t, "2.50"), "third")

	got := account.History()
	require.Len(t, got, 3)

	memos := []string{got[0].Memo, got[1].Memo, got[2].Memo}
	if diff := cmp.Diff([]string{"third", "second", "first"}, memos); diff != "" {
		t.Errorf("History() order mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, third.ID, got[0].ID)
	require.Equal(t, second.ID, got[1].ID)
	require.Equal(t, first.ID, got[2].ID)

	// Insertion timestamps are non-decreasing, so the returned order is
	// reverse chronological.
	require.False(t, got[0].CreatedAt.Before(got[2].CreatedAt))
}

func TestHistoryCopyDoesNotAliasLedger(t *testing.T) {
	_, user, _ := onboardTestUser(t)
	account := user.Accounts()[0]

	account.Record(decimalFromString(t, "10"), "keep")

	got := account.History()
	got[0].Memo = "mutated"

	require.Equal(t, "keep", account.History()[0].Memo)
}
