// Package domain provides definitions of all entities.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one balance change on an account.
// The sign of Amount determines credit (>= 0) vs debit (< 0).
type Transaction struct {
	ID        uuid.UUID
	AccountID string // owning account, for display only
	Amount    decimal.Decimal
	Memo      string // may be empty
	CreatedAt time.Time
}

// TransferResult holds the two postings of a completed transfer.
type TransferResult struct {
	FromTransaction Transaction
	ToTransaction   Transaction
}
