// Package bank aggregates customers and reports totals across them.
package bank

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/go-petr/interest-bank/internal/customer"
	"github.com/go-petr/interest-bank/internal/domain"
)

// Bank owns customers in the order they were added.
// It is safe for concurrent use.
type Bank struct {
	mu        sync.RWMutex
	customers []*customer.Customer
}

// New returns a bank without customers.
func New() *Bank {
	return &Bank{}
}

// AddCustomer registers the customer with the bank.
func (b *Bank) AddCustomer(c *customer.Customer) error {
	if c == nil {
		return domain.ErrNilCustomer
	}

	b.mu.Lock()
	b.customers = append(b.customers, c)
	b.mu.Unlock()

	return nil
}

// Customers returns the customers in the order they were added.
func (b *Bank) Customers() []*customer.Customer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]*customer.Customer, len(b.customers))
	copy(result, b.customers)

	return result
}

// Customer returns the first customer with the given name.
func (b *Bank) Customer(name string) (*customer.Customer, error) {
	for _, c := range b.Customers() {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, domain.ErrCustomerNotFound
}

// CustomerSummary lists every customer with their number of accounts.
func (b *Bank) CustomerSummary() string {
	var sb strings.Builder

	sb.WriteString("Customer Summary")

	for _, c := range b.Customers() {
		sb.WriteString("\n - " + c.Summary())
	}

	return sb.String()
}

// TotalInterestPaid returns the interest accrued across all customers.
func (b *Bank) TotalInterestPaid() (decimal.Decimal, error) {
	total := decimal.Zero

	for _, c := range b.Customers() {
		earned, err := c.TotalInterestEarned()
		if err != nil {
			return decimal.Zero, fmt.Errorf("customer %s: %w", c.Name(), err)
		}

		total = total.Add(earned)
	}

	return total, nil
}

// FirstCustomer returns the name of the earliest added customer.
// ok is false when the bank has no customers.
func (b *Bank) FirstCustomer() (name string, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.customers) == 0 {
		return "", false
	}

	return b.customers[0].Name(), true
}
