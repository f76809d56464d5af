// Package txlog provides the append-only transaction history of an account.
package txlog

import (
	"sync"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
	"github.com/shopspring/decimal"
)

// Log is a chronological, append-only sequence of transactions.
// It is safe for concurrent use.
type Log struct {
	mu           sync.Mutex
	clock        clockpkg.Clock
	transactions []domain.Transaction
}

// New returns an empty log stamping transactions with the given clock.
func New(clock clockpkg.Clock) *Log {
	return &Log{clock: clock}
}

// Append records a signed amount stamped with the current instant.
// A zero amount is rejected with domain.ErrInvalidAmount and nothing is recorded.
func (l *Log) Append(amount decimal.Decimal, description string) (domain.Transaction, error) {
	if amount.IsZero() {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Stamped under the lock so insertion order is chronological order.
	tx := domain.NewTransaction(amount, description, l.clock.Now())
	l.transactions = append(l.transactions, tx)

	return tx, nil
}

// Snapshot returns a copy of all transactions in insertion order.
func (l *Log) Snapshot() []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]domain.Transaction, len(l.transactions))
	copy(result, l.transactions)

	return result
}

// Sum returns the sum of all transaction amounts.
func (l *Log) Sum() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sum := decimal.Zero
	for _, tx := range l.transactions {
		sum = sum.Add(tx.Amount)
	}

	return sum
}

// Len returns the number of recorded transactions.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.transactions)
}
