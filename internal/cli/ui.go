// Package cli manages the interactive menu delivery layer.
//
// All policy errors surfaced here (invalid option, invalid account, invalid
// amount) are recovered locally by re-prompting and never propagate further.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lime5005/atm/internal/bank"
	"github.com/lime5005/atm/internal/domain"
	"github.com/lime5005/atm/pkg/moneypkg"
)

// Service provides service layer interface needed by the menu delivery layer.
//
//go:generate mockgen -source ui.go -destination ui_mock.go -package cli
type Service interface {
	BankName() string
	Login(ctx context.Context, userID, pin string) (*bank.User, error)
	Deposit(ctx context.Context, u *bank.User, accountIdx int, amount, memo string) (domain.Transaction, error)
	Withdraw(ctx context.Context, u *bank.User, accountIdx int, amount, memo string) (domain.Transaction, error)
	Transfer(ctx context.Context, u *bank.User, fromIdx, toIdx int, amount, memo string) (domain.TransferResult, error)
	History(u *bank.User, accountIdx int) ([]domain.Transaction, error)
	Summary(u *bank.User) []string
}

const timestampLayout = "2006-01-02 15:04:05"

// UI drives the interactive menu over the given reader and writer.
type UI struct {
	service Service
	in      *bufio.Reader
	out     io.Writer
}

// New returns a menu UI bound to the given service and streams.
func New(service Service, in io.Reader, out io.Writer) *UI {
	return &UI{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run loops login sessions until the input stream ends. Quitting the user
// menu returns to the login prompt; EOF ends the loop.
func (ui *UI) Run(ctx context.Context) {
	for {
		user, err := ui.loginPrompt(ctx)
		if err != nil {
			return
		}

		sessionLogger := zerolog.Ctx(ctx).With().
			Str("session_id", uuid.NewString()).
			Str("user_id", user.ID()).
			Logger()

		if err := ui.userMenu(sessionLogger.WithContext(ctx), user); err != nil {
			return
		}
	}
}

func (ui *UI) readLine() (string, error) {
	line, err := ui.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// loginPrompt retries until a login succeeds. The rejection message is the
// same for an unknown ID and a wrong PIN.
func (ui *UI) loginPrompt(ctx context.Context) (*bank.User, error) {
	for {
		fmt.Fprintf(ui.out, "\nWelcome to %s\n\n", ui.service.BankName())

		fmt.Fprint(ui.out, "Enter user ID: ")
		userID, err := ui.readLine()
		if err != nil {
			return nil, err
		}

		fmt.Fprint(ui.out, "Enter PIN: ")
		pin, err := ui.readLine()
		if err != nil {
			return nil, err
		}

		user, err := ui.service.Login(ctx, userID, pin)
		if err != nil {
			fmt.Fprintln(ui.out, "Incorrect user ID/PIN combination. Please try again.")
			continue
		}

		return user, nil
	}
}

func (ui *UI) userMenu(ctx context.Context, user *bank.User) error {
	for {
		fmt.Fprintf(ui.out, "\n%s's accounts summary\n", user.FirstName())
		for i, line := range ui.service.Summary(user) {
			fmt.Fprintf(ui.out, " %d) %s\n", i+1, line)
		}

		fmt.Fprintf(ui.out, "\nWelcome %s, what would you like to do?\n", user.FirstName())
		fmt.Fprintln(ui.out, " 1) Show account transaction history")
		fmt.Fprintln(ui.out, " 2) Withdraw")
		fmt.Fprintln(ui.out, " 3) Deposit")
		fmt.Fprintln(ui.out, " 4) Transfer")
		fmt.Fprintln(ui.out, " 5) Quit")
		fmt.Fprint(ui.out, "Enter option: ")

		option, err := ui.promptOption()
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = ui.showHistory(user)
		case 2:
			err = ui.withdraw(ctx, user)
		case 3:
			err = ui.deposit(ctx, user)
		case 4:
			err = ui.transfer(ctx, user)
		case 5:
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// promptOption re-prompts until the input is a number within 1~5.
func (ui *UI) promptOption() (int, error) {
	for {
		line, err := ui.readLine()
		if err != nil {
			return 0, err
		}

		option, err := strconv.Atoi(line)
		if err != nil || option < 1 || option > 5 {
			fmt.Fprintln(ui.out, "Invalid option. Please choose 1~5")
			fmt.Fprint(ui.out, "Enter option: ")

			continue
		}

		return option, nil
	}
}

// promptAccountIndex asks for a 1-based account number and returns the
// 0-based index, re-prompting on anything outside the displayed range.
func (ui *UI) promptAccountIndex(user *bank.User, verb string) (int, error) {
	for {
		fmt.Fprintf(ui.out, "Enter the number (1~%d) of the account to %s: ", user.AccountCount(), verb)

		line, err := ui.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		idx := n - 1

		if err != nil || idx < 0 || idx >= user.AccountCount() {
			fmt.Fprintln(ui.out, "Invalid account. Please try again.")
			continue
		}

		return idx, nil
	}
}

// promptAmount re-prompts until the input parses as a non-negative amount
// not exceeding max (when max is given).
func (ui *UI) promptAmount(prompt string, max *decimal.Decimal) (string, error) {
	for {
		fmt.Fprint(ui.out, prompt)

		line, err := ui.readLine()
		if err != nil {
			return "", err
		}

		amount, err := decimal.NewFromString(line)
		if err != nil || amount.IsNegative() {
			fmt.Fprintln(ui.out, "Amount should not be less than 0.")
			continue
		}

		if max != nil && amount.GreaterThan(*max) {
			fmt.Fprintf(ui.out, "Amount must not be greater than the balance of %s.\n", moneypkg.Format(*max))
			continue
		}

		return amount.String(), nil
	}
}

func (ui *UI) promptMemo() (string, error) {
	fmt.Fprintln(ui.out, "Enter a memo: ")
	return ui.readLine()
}

func (ui *UI) showHistory(user *bank.User) error {
	idx, err := ui.promptAccountIndex(user, "see transactions of")
	if err != nil {
		return err
	}

	accountID, err := user.AccountID(idx)
	if err != nil {
		return err
	}

	history, err := ui.service.History(user, idx)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.out, "\nTransaction history for account %s:\n", accountID)

	if len(history) == 0 {
		fmt.Fprintln(ui.out, "No transactions yet for this account.")
		return nil
	}

	for _, tx := range history {
		fmt.Fprintf(ui.out, "%s : %s : %s\n",
			tx.CreatedAt.Format(timestampLayout), moneypkg.Format(tx.Amount), tx.Memo)
	}

	return nil
}

func (ui *UI) deposit(ctx context.Context, user *bank.User) error {
	idx, err := ui.promptAccountIndex(user, "deposit TO")
	if err != nil {
		return err
	}

	balance, err := user.Balance(idx)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Enter the amount to deposit (current balance is %s): $", moneypkg.Format(balance))

	amount, err := ui.promptAmount(prompt, nil)
	if err != nil {
		return err
	}

	memo, err := ui.promptMemo()
	if err != nil {
		return err
	}

	if _, err := ui.service.Deposit(ctx, user, idx, amount, memo); err != nil {
		fmt.Fprintln(ui.out, "Deposit failed. Please try again.")
	}

	return nil
}

func (ui *UI) withdraw(ctx context.Context, user *bank.User) error {
	idx, err := ui.promptAccountIndex(user, "withdraw FROM")
	if err != nil {
		return err
	}

	balance, err := user.Balance(idx)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Enter the amount to withdraw (max %s): $", moneypkg.Format(balance))

	amount, err := ui.promptAmount(prompt, &balance)
	if err != nil {
		return err
	}

	memo, err := ui.promptMemo()
	if err != nil {
		return err
	}

	if _, err := ui.service.Withdraw(ctx, user, idx, amount, memo); err != nil {
		fmt.Fprintln(ui.out, "Withdrawal failed. Please try again.")
	}

	return nil
}

func (ui *UI) transfer(ctx context.Context, user *bank.User) error {
	fromIdx, err := ui.promptAccountIndex(user, "transfer FROM")
	if err != nil {
		return err
	}

	toIdx, err := ui.promptAccountIndex(user, "transfer TO")
	if err != nil {
		return err
	}

	balance, err := user.Balance(fromIdx)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Enter the amount to transfer (max %s): $", moneypkg.Format(balance))

	amount, err := ui.promptAmount(prompt, &balance)
	if err != nil {
		return err
	}

	memo, err := ui.promptMemo()
	if err != nil {
		return err
	}

	if _, err := ui.service.Transfer(ctx, user, fromIdx, toIdx, amount, memo); err != nil {
		fmt.Fprintln(ui.out, "Transfer failed. Please try again.")
	}

	return nil
}
