// Package bankservice manages business logic layer of customers and accounts.
package bankservice

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/interest-bank/internal/account"
	"github.com/go-petr/interest-bank/internal/bank"
	"github.com/go-petr/interest-bank/internal/customer"
	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
	"github.com/go-petr/interest-bank/pkg/moneypkg"
	"github.com/go-petr/interest-bank/pkg/sequencepkg"
)

// Service facilitates bank service layer logic.
type Service struct {
	bank    *bank.Bank
	clock   clockpkg.Clock
	numbers *sequencepkg.Sequence

	mu       sync.RWMutex
	accounts map[int32]*account.Account
}

// New returns bank service struct to manage customers and their accounts.
func New(b *bank.Bank, clock clockpkg.Clock, numbers *sequencepkg.Sequence) *Service {
	return &Service{
		bank:     b,
		clock:    clock,
		numbers:  numbers,
		accounts: make(map[int32]*account.Account),
	}
}

// CreateCustomer registers a new customer with a unique name.
func (s *Service) CreateCustomer(ctx context.Context, name string) (domain.CustomerView, error) {
	l := zerolog.Ctx(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.CustomerView{}, domain.ErrEmptyName
	}

	// Held across lookup and insert so two requests cannot register the same name.
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.bank.Customer(name); err == nil {
		l.Info().Str("customer", name).Err(domain.ErrCustomerAlreadyExists).Send()
		return domain.CustomerView{}, domain.ErrCustomerAlreadyExists
	}

	c := customer.New(name)
	if err := s.bank.AddCustomer(c); err != nil {
		l.Error().Err(err).Send()
		return domain.CustomerView{}, err
	}

	l.Info().Str("customer", name).Msg("customer created")

	return customerView(c), nil
}

// GetCustomer returns the customer with the given name.
func (s *Service) GetCustomer(ctx context.Context, name string) (domain.CustomerView, error) {
	c, err := s.bank.Customer(name)
	if err != nil {
		return domain.CustomerView{}, err
	}

	return customerView(c), nil
}

// OpenAccount opens an account of the given type for the customer.
func (s *Service) OpenAccount(ctx context.Context, customerName string, accountType domain.AccountType) (domain.AccountView, error) {
	l := zerolog.Ctx(ctx)

	c, err := s.bank.Customer(customerName)
	if err != nil {
		return domain.AccountView{}, err
	}

	a, err := account.New(s.numbers.Next(), accountType, s.clock)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.AccountView{}, err
	}

	s.mu.Lock()
	s.accounts[a.Number()] = a
	s.mu.Unlock()

	c.OpenAccount(a)

	l.Info().
		Str("customer", customerName).
		Int32("account", a.Number()).
		Str("type", accountType.Code()).
		Msg("account opened")

	return s.view(ctx, a)
}

// GetAccount returns the account with the given number.
func (s *Service) GetAccount(ctx context.Context, id int32) (domain.AccountView, error) {
	a, err := s.account(id)
	if err != nil {
		return domain.AccountView{}, err
	}

	return s.view(ctx, a)
}

// Deposit parses amount and deposits it to the account.
func (s *Service) Deposit(ctx context.Context, id int32, amount, description string) (domain.AccountView, error) {
	return s.apply(ctx, id, amount, description, (*account.Account).Deposit)
}

// Withdraw parses amount and withdraws it from the account.
func (s *Service) Withdraw(ctx context.Context, id int32, amount, description string) (domain.AccountView, error) {
	return s.apply(ctx, id, amount, description, (*account.Account).Withdraw)
}

type operation func(a *account.Account, amount decimal.Decimal, description string) error

func (s *Service) apply(ctx context.Context, id int32, amount, description string, op operation) (domain.AccountView, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := moneypkg.Parse(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return domain.AccountView{}, domain.ErrInvalidAmount
	}

	a, err := s.account(id)
	if err != nil {
		return domain.AccountView{}, err
	}

	if err := op(a, amountDecimal, description); err != nil {
		l.Info().Err(err).Int32("account", id).Str("amount", amount).Send()
		return domain.AccountView{}, err
	}

	return s.view(ctx, a)
}

// Statement returns the statement of the customer with the given name.
func (s *Service) Statement(ctx context.Context, customerName string) (string, error) {
	c, err := s.bank.Customer(customerName)
	if err != nil {
		return "", err
	}

	return c.Statement(), nil
}

// Summary returns the customer summary and the total interest paid by the bank.
func (s *Service) Summary(ctx context.Context) (domain.BankSummary, error) {
	l := zerolog.Ctx(ctx)

	total, err := s.bank.TotalInterestPaid()
	if err != nil {
		l.Error().Err(err).Msg("cannot compute total interest")
		return domain.BankSummary{}, err
	}

	first, _ := s.bank.FirstCustomer()

	return domain.BankSummary{
		Summary:           s.bank.CustomerSummary(),
		TotalInterestPaid: total.StringFixed(2),
		FirstCustomer:     first,
	}, nil
}

func (s *Service) account(id int32) (*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

func (s *Service) view(ctx context.Context, a *account.Account) (domain.AccountView, error) {
	v, err := a.View()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			zerolog.Ctx(ctx).Error().Err(err).Int32("account", a.Number()).Msg("transaction history out of order")
		}

		return domain.AccountView{}, err
	}

	return v, nil
}

func customerView(c *customer.Customer) domain.CustomerView {
	return domain.CustomerView{
		Name:             c.Name(),
		NumberOfAccounts: c.NumberOfAccounts(),
		Summary:          c.Summary(),
	}
}
