package bank

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/interest-bank/internal/account"
	"github.com/go-petr/interest-bank/internal/customer"
	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
	"github.com/go-petr/interest-bank/pkg/sequencepkg"
)

type fixture struct {
	clock   *clockpkg.Fake
	numbers *sequencepkg.Sequence
}

func newFixture() fixture {
	return fixture{
		clock:   clockpkg.NewFake(time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC)),
		numbers: sequencepkg.New(1),
	}
}

func (f fixture) open(t *testing.T, accountType domain.AccountType, deposit int64) *account.Account {
	t.Helper()

	a, err := account.New(f.numbers.Next(), accountType, f.clock)
	require.NoError(t, err)

	if deposit > 0 {
		require.NoError(t, a.Deposit(decimal.NewFromInt(deposit), ""))
	}

	return a
}

func TestCustomerSummary(t *testing.T) {
	t.Parallel()

	f := newFixture()
	b := New()
	require.Equal(t, "Customer Summary", b.CustomerSummary())

	john := customer.New("John").OpenAccount(f.open(t, domain.Checking, 0))
	require.NoError(t, b.AddCustomer(john))

	bill := customer.New("Bill").
		OpenAccount(f.open(t, domain.Savings, 0)).
		OpenAccount(f.open(t, domain.MaxiSavings, 0))
	require.NoError(t, b.AddCustomer(bill))

	require.NoError(t, b.AddCustomer(customer.New("Ann")))

	want := "Customer Summary\n - John (1 account)\n - Bill (2 accounts)\n - Ann (0 accounts)"
	require.Equal(t, want, b.CustomerSummary())
}

func TestAddNilCustomer(t *testing.T) {
	t.Parallel()

	b := New()
	require.ErrorIs(t, b.AddCustomer(nil), domain.ErrNilCustomer)
	require.Empty(t, b.Customers())
}

func TestTotalInterestPaid(t *testing.T) {
	t.Parallel()

	f := newFixture()
	b := New()

	first := f.open(t, domain.Checking, 100)
	second := f.open(t, domain.Checking, 2500)

	require.NoError(t, b.AddCustomer(customer.New("Bill").OpenAccount(first)))
	require.NoError(t, b.AddCustomer(customer.New("Ann").OpenAccount(second)))

	f.clock.AdvanceDays(200)

	firstEarned, err := first.InterestEarned()
	require.NoError(t, err)

	secondEarned, err := second.InterestEarned()
	require.NoError(t, err)

	got, err := b.TotalInterestPaid()
	require.NoError(t, err)
	require.True(t, firstEarned.Add(secondEarned).Equal(got), "total = %v", got)
	require.True(t, got.IsPositive())
}

func TestTotalInterestPaidError(t *testing.T) {
	t.Parallel()

	f := newFixture()
	b := New()
	require.NoError(t, b.AddCustomer(customer.New("Bill").OpenAccount(f.open(t, domain.Savings, 10))))

	f.clock.Advance(-time.Minute)

	_, err := b.TotalInterestPaid()
	require.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestFirstCustomer(t *testing.T) {
	t.Parallel()

	b := New()

	_, ok := b.FirstCustomer()
	require.False(t, ok)

	require.NoError(t, b.AddCustomer(customer.New("John")))
	require.NoError(t, b.AddCustomer(customer.New("Bill")))

	name, ok := b.FirstCustomer()
	require.True(t, ok)
	require.Equal(t, "John", name)
}

func TestCustomerLookup(t *testing.T) {
	t.Parallel()

	b := New()
	john := customer.New("John")
	require.NoError(t, b.AddCustomer(john))

	got, err := b.Customer("John")
	require.NoError(t, err)
	require.Same(t, john, got)

	_, err = b.Customer("Bill")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
