// Package customer groups the accounts owned by one customer.
package customer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/moneypkg"
)

// Account provides the account data needed by a customer.
//
//go:generate mockgen -source customer.go -destination customer_mock.go -package customer
type Account interface {
	Number() int32
	Type() domain.AccountType
	Transactions() []domain.Transaction
	InterestEarned() (decimal.Decimal, error)
}

// Customer owns a set of accounts in the order they were opened.
// It is safe for concurrent use.
type Customer struct {
	name string

	mu       sync.RWMutex
	accounts []Account
}

// New returns a customer without accounts.
func New(name string) *Customer {
	return &Customer{name: name}
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// OpenAccount adds the account to the customer and returns the customer.
func (c *Customer) OpenAccount(a Account) *Customer {
	c.mu.Lock()
	c.accounts = append(c.accounts, a)
	c.mu.Unlock()

	return c
}

// Accounts returns the customer accounts in the order they were opened.
func (c *Customer) Accounts() []Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Account, len(c.accounts))
	copy(result, c.accounts)

	return result
}

// NumberOfAccounts returns how many accounts the customer has opened.
func (c *Customer) NumberOfAccounts() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.accounts)
}

// TotalInterestEarned returns the interest accrued across all customer accounts.
func (c *Customer) TotalInterestEarned() (decimal.Decimal, error) {
	total := decimal.Zero

	for _, a := range c.Accounts() {
		earned, err := a.InterestEarned()
		if err != nil {
			return decimal.Zero, fmt.Errorf("account %d: %w", a.Number(), err)
		}

		total = total.Add(earned)
	}

	return total, nil
}

// Summary returns "Name (N accounts)".
func (c *Customer) Summary() string {
	return fmt.Sprintf("%s (%s)", c.name, Plural(c.NumberOfAccounts(), "account"))
}

// Plural returns "1 word" or "N words".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// Statement returns the transactions and totals of every customer account.
func (c *Customer) Statement() string {
	var sb strings.Builder

	sb.WriteString("Statement for " + c.name + "\n")

	total := decimal.Zero

	for _, a := range c.Accounts() {
		text, accountTotal := accountStatement(a)

		sb.WriteString("\n" + text + "\n")

		total = total.Add(accountTotal)
	}

	sb.WriteString("\nTotal In All Accounts " + moneypkg.Dollars(total))

	return sb.String()
}

func accountStatement(a Account) (string, decimal.Decimal) {
	var sb strings.Builder

	sb.WriteString(a.Type().String() + " Account\n")

	total := decimal.Zero

	for _, tx := range a.Transactions() {
		kind := domain.DepositDescription
		if tx.IsWithdrawal() {
			kind = domain.WithdrawalDescription
		}

		sb.WriteString("  " + kind + " " + moneypkg.Dollars(tx.Amount) + "\n")

		total = total.Add(tx.Amount)
	}

	sb.WriteString("Total " + moneypkg.Dollars(total))

	return sb.String(), total
}
