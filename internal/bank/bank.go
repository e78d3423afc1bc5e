// Package bank implements the in-memory ledger model: the Bank aggregate
// with its user and account registries, identifier issuance and
// authentication, plus the User and Account entities it owns.
package bank

import (
	"github.com/lime5005/atm/internal/domain"
	"github.com/lime5005/atm/pkg/errorspkg"
	"github.com/lime5005/atm/pkg/passpkg"
	"github.com/lime5005/atm/pkg/randompkg"
)

// Identifier lengths. Users and accounts are separate namespaces.
const (
	UserIDLength    = 6
	AccountIDLength = 10
)

// DefaultAccountName is the account every user is onboarded with.
const DefaultAccountName = "Savings"

// Bank owns the user registry and the flat account registry spanning all
// users. One instance lives for the process lifetime; nothing is persisted.
type Bank struct {
	name     string
	users    []*User
	accounts []*Account
}

// New returns an empty bank with the given name.
func New(name string) *Bank {
	return &Bank{name: name}
}

// Name returns the bank's name.
func (b *Bank) Name() string {
	return b.name
}

// UserCount returns the number of registered users.
func (b *Bank) UserCount() int {
	return len(b.users)
}

// AccountCount returns the number of accounts across all users.
func (b *Bank) AccountCount() int {
	return len(b.accounts)
}

// issueUserID generates a user identifier unique among registered users.
func (b *Bank) issueUserID() string {
	existing := make(map[string]struct{}, len(b.users))
	for _, u := range b.users {
		existing[u.id] = struct{}{}
	}

	return randompkg.NumericID(existing, UserIDLength)
}

// issueAccountID generates an account identifier unique among registered accounts.
func (b *Bank) issueAccountID() string {
	existing := make(map[string]struct{}, len(b.accounts))
	for _, a := range b.accounts {
		existing[a.id] = struct{}{}
	}

	return randompkg.NumericID(existing, AccountIDLength)
}

// registerAccount appends to the flat registry. Uniqueness was already
// guaranteed at issuance, so there is no recheck here.
func (b *Bank) registerAccount(a *Account) {
	b.accounts = append(b.accounts, a)
}

// OpenAccount issues a fresh identifier, creates an account with the given
// display name and registers it with both the bank and the holder.
func (b *Bank) OpenAccount(holder *User, name string) *Account {
	account := &Account{
		id:     b.issueAccountID(),
		name:   name,
		holder: holder,
	}

	holder.addAccount(account)
	b.registerAccount(account)

	return account
}

// OnboardUser creates a user with a freshly issued identifier and hashed PIN,
// opens the default savings account for them and registers both.
func (b *Bank) OnboardUser(firstName, lastName, pin string) (*User, error) {
	hashedPin, err := passpkg.Hash(pin)
	if err != nil {
		return nil, errorspkg.ErrInternal
	}

	user := &User{
		firstName: firstName,
		lastName:  lastName,
		id:        b.issueUserID(),
		hashedPin: hashedPin,
	}
	b.users = append(b.users, user)

	b.OpenAccount(user, DefaultAccountName)

	return user, nil
}

// Authenticate returns the user whose identifier and PIN both match.
// Any mismatch yields domain.ErrLoginFailed; the error does not reveal
// whether the identifier or the PIN was wrong.
func (b *Bank) Authenticate(userID, pin string) (*User, error) {
	for _, user := range b.users {
		if user.id == userID && user.CheckPIN(pin) {
			return user, nil
		}
	}

	return nil, domain.ErrLoginFailed
}
