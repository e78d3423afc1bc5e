package bank

import (
	"github.com/shopspring/decimal"

	"github.com/lime5005/atm/internal/domain"
	"github.com/lime5005/atm/pkg/passpkg"
)

// User holds a bank customer: name, credential digest and the ordered list
// of owned accounts. The account order is the display order, so callers
// address accounts by 0-based position.
type User struct {
	firstName string
	lastName  string
	id        string
	hashedPin string // one-way digest, the plaintext PIN is never retained
	accounts  []*Account
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// ID returns the user identifier.
func (u *User) ID() string {
	return u.id
}

// CheckPIN reports whether the candidate PIN matches the stored digest.
func (u *User) CheckPIN(pin string) bool {
	return passpkg.Check(pin, u.hashedPin) == nil
}

// AccountCount returns the number of accounts the user owns.
func (u *User) AccountCount() int {
	return len(u.accounts)
}

// Accounts returns the user's accounts in display order.
func (u *User) Accounts() []*Account {
	accounts := make([]*Account, len(u.accounts))
	copy(accounts, u.accounts)

	return accounts
}

func (u *User) account(idx int) (*Account, error) {
	if idx < 0 || idx >= len(u.accounts) {
		return nil, domain.ErrAccountIndexOutOfRange
	}

	return u.accounts[idx], nil
}

// Balance returns the derived balance of the account at the given position.
func (u *User) Balance(idx int) (decimal.Decimal, error) {
	account, err := u.account(idx)
	if err != nil {
		return decimal.Zero, err
	}

	return account.Balance(), nil
}

// AccountID returns the identifier of the account at the given position.
func (u *User) AccountID(idx int) (string, error) {
	account, err := u.account(idx)
	if err != nil {
		return "", err
	}

	return account.ID(), nil
}

// History returns the transactions of the account at the given position, newest first.
func (u *User) History(idx int) ([]domain.Transaction, error) {
	account, err := u.account(idx)
	if err != nil {
		return nil, err
	}

	return account.History(), nil
}

// Record posts a transaction to the account at the given position.
func (u *User) Record(idx int, amount decimal.Decimal, memo string) (domain.Transaction, error) {
	account, err := u.account(idx)
	if err != nil {
		return domain.Transaction{}, err
	}

	return account.Record(amount, memo), nil
}

func (u *User) addAccount(a *Account) {
	u.accounts = append(u.accounts, a)
}
