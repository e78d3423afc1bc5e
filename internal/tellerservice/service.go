// Package tellerservice manages business logic layer of teller operations.
//
// Amount policy lives here: the ledger below accepts any signed amount,
// while this layer rejects negative amounts and overdrafts.
package tellerservice

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lime5005/atm/internal/bank"
	"github.com/lime5005/atm/internal/domain"
	"github.com/lime5005/atm/pkg/moneypkg"
)

// Service facilitates teller operations against one bank.
type Service struct {
	bank     *bank.Bank
	validate *validator.Validate
}

// New returns a teller service for the given bank.
func New(b *bank.Bank) *Service {
	return &Service{
		bank:     b,
		validate: validator.New(),
	}
}

// BankName returns the name of the serviced bank.
func (s *Service) BankName() string {
	return s.bank.Name()
}

// OnboardParams is the input data to onboard a user.
type OnboardParams struct {
	FirstName string `validate:"required,alpha"`
	LastName  string `validate:"required,alpha"`
	Pin       string `validate:"required,numeric,len=4"`
}

// Onboard validates the input and creates a user with their default account.
func (s *Service) Onboard(ctx context.Context, arg OnboardParams) (*bank.User, error) {
	l := zerolog.Ctx(ctx)

	if err := s.validate.Struct(arg); err != nil {
		l.Info().Err(err).Send()
		return nil, domain.ErrInvalidOnboarding
	}

	user, err := s.bank.OnboardUser(arg.FirstName, arg.LastName, arg.Pin)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	l.Info().
		Str("user_id", user.ID()).
		Str("last_name", user.LastName()).
		Str("first_name", user.FirstName()).
		Msg("new user created")

	return user, nil
}

// OpenAccount opens an additional named account for the user.
func (s *Service) OpenAccount(ctx context.Context, u *bank.User, name string) *bank.Account {
	l := zerolog.Ctx(ctx)

	account := s.bank.OpenAccount(u, name)

	l.Info().
		Str("user_id", u.ID()).
		Str("account_id", account.ID()).
		Str("account_name", account.Name()).
		Msg("account opened")

	return account
}

// Login authenticates the user ID and PIN combination. The returned error
// never reveals which part of the credential was wrong.
func (s *Service) Login(ctx context.Context, userID, pin string) (*bank.User, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.bank.Authenticate(userID, pin)
	if err != nil {
		l.Info().Err(err).Msg("login rejected")
		return nil, err
	}

	l.Info().Str("user_id", user.ID()).Msg("login accepted")

	return user, nil
}

func (s *Service) parseAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if amountDecimal.IsNegative() {
		return decimal.Zero, domain.ErrNegativeAmount
	}

	return amountDecimal, nil
}

// Deposit posts a credit of the given amount to the account at the given
// position. There is no upper bound on deposits.
func (s *Service) Deposit(ctx context.Context, u *bank.User, accountIdx int, amount, memo string) (domain.Transaction, error) {
	amountDecimal, err := s.parseAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	return u.Record(accountIdx, amountDecimal, memo)
}

// Withdraw posts a debit of the given amount to the account at the given
// position, rejecting amounts above the current balance.
func (s *Service) Withdraw(ctx context.Context, u *bank.User, accountIdx int, amount, memo string) (domain.Transaction, error) {
	amountDecimal, err := s.parseAmount(ctx, amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	balance, err := u.Balance(accountIdx)
	if err != nil {
		return domain.Transaction{}, err
	}

	if balance.LessThan(amountDecimal) {
		return domain.Transaction{}, domain.ErrInsufficientBalance
	}

	return u.Record(accountIdx, amountDecimal.Neg(), memo)
}

// Transfer moves the given amount between two accounts of the same user as
// two independent postings whose memos cross-reference the other account.
//
// Known limitation: there is no atomicity between the two postings. The debit
// is posted first, and if the credit could not be posted the debit would
// remain applied.
func (s *Service) Transfer(ctx context.Context, u *bank.User, fromIdx, toIdx int, amount, memo string) (domain.TransferResult, error) {
	var result domain.TransferResult

	amountDecimal, err := s.parseAmount(ctx, amount)
	if err != nil {
		return result, err
	}

	fromBalance, err := u.Balance(fromIdx)
	if err != nil {
		return result, err
	}

	if fromBalance.LessThan(amountDecimal) {
		return result, domain.ErrInsufficientBalance
	}

	fromID, err := u.AccountID(fromIdx)
	if err != nil {
		return result, err
	}

	toID, err := u.AccountID(toIdx)
	if err != nil {
		return result, err
	}

	result.FromTransaction, err = u.Record(fromIdx, amountDecimal.Neg(),
		fmt.Sprintf("Transfer to account #%s: %s", toID, memo))
	if err != nil {
		return result, err
	}

	result.ToTransaction, err = u.Record(toIdx, amountDecimal,
		fmt.Sprintf("Transfer from account #%s: %s", fromID, memo))
	if err != nil {
		return result, err
	}

	return result, nil
}

// History returns the transactions of the account at the given position, newest first.
func (s *Service) History(u *bank.User, accountIdx int) ([]domain.Transaction, error) {
	return u.History(accountIdx)
}

// Summary returns one display line per account in display order.
func (s *Service) Summary(u *bank.User) []string {
	accounts := u.Accounts()

	lines := make([]string, len(accounts))
	for i, account := range accounts {
		lines[i] = fmt.Sprintf("%s : %s : %s",
			account.ID(), moneypkg.Format(account.Balance()), account.Name())
	}

	return lines
}
