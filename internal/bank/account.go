package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lime5005/atm/internal/domain"
)

// Account holds the append-only transaction ledger of one user account.
// The balance is always derived from the ledger, never stored.
type Account struct {
	id           string
	name         string
	holder       *User
	transactions []domain.Transaction
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Name returns the account display name.
func (a *Account) Name() string {
	return a.name
}

// Holder returns the user that owns the account.
func (a *Account) Holder() *User {
	return a.holder
}

// Balance returns the sum of all recorded transaction amounts.
// It recomputes on every call; ledgers are small enough that caching
// is not worth the invalidation bookkeeping.
func (a *Account) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range a.transactions {
		balance = balance.Add(tx.Amount)
	}

	return balance
}

// Record appends a transaction with the given signed amount and memo,
// stamped with the current time, and returns it. The ledger accepts any
// signed amount; overdraft and sign policy belong to the calling layer.
func (a *Account) Record(amount decimal.Decimal, memo string) domain.Transaction {
	tx := domain.Transaction{
		ID:        uuid.New(),
		AccountID: a.id,
		Amount:    amount,
		Memo:      memo,
		CreatedAt: time.Now(),
	}
	a.transactions = append(a.transactions, tx)

	return tx
}

// History returns the account transactions newest first.
func (a *Account) History() []domain.Transaction {
	history := make([]domain.Transaction, len(a.transactions))
	for i, tx := range a.transactions {
		history[len(a.transactions)-1-i] = tx
	}

	return history
}

// TransactionCount returns the number of recorded transactions.
func (a *Account) TransactionCount() int {
	return len(a.transactions)
}
