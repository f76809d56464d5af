package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Descriptions given to transactions created without one.
const (
	DepositDescription    = "deposit"
	WithdrawalDescription = "withdrawal"
)

// Transaction holds a signed balance change of an account.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"` // can be negative or positive
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTransaction returns a transaction for the signed amount created at the given instant.
// An empty description is replaced by "deposit" or "withdrawal".
func NewTransaction(amount decimal.Decimal, description string, createdAt time.Time) Transaction {
	if description == "" {
		description = DepositDescription
		if amount.IsNegative() {
			description = WithdrawalDescription
		}
	}

	return Transaction{
		Amount:      amount,
		Description: description,
		CreatedAt:   createdAt,
	}
}

// IsWithdrawal reports whether the transaction takes money out of the account.
func (t Transaction) IsWithdrawal() bool {
	return t.Amount.IsNegative()
}
