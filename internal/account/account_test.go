package account

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
	"github.com/go-petr/interest-bank/pkg/sequencepkg"
)

var opened = time.Date(2022, time.June, 1, 8, 0, 0, 0, time.UTC)

func newAccount(t *testing.T, accountType domain.AccountType, clock clockpkg.Clock) *Account {
	t.Helper()

	a, err := New(1, accountType, clock)
	require.NoError(t, err)

	return a
}

func TestNewUnknownType(t *testing.T) {
	t.Parallel()

	got, err := New(1, domain.AccountType(9), clockpkg.NewSystem())
	require.ErrorIs(t, err, domain.ErrUnknownAccountType)
	require.Nil(t, got)
}

func TestEmptyAccountEarnsNothing(t *testing.T) {
	t.Parallel()

	for _, accountType := range domain.AccountTypes {
		a := newAccount(t, accountType, clockpkg.NewSystem())

		got, err := a.InterestEarned()
		require.NoError(t, err)
		require.True(t, got.IsZero())
		require.True(t, a.Balance().IsZero())
	}
}

func TestInvalidAmount(t *testing.T) {
	t.Parallel()

	a := newAccount(t, domain.Checking, clockpkg.NewFake(opened))
	require.NoError(t, a.Deposit(decimal.NewFromInt(100), ""))

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50), decimal.RequireFromString("-0.01")} {
		require.ErrorIs(t, a.Deposit(amount, ""), domain.ErrInvalidAmount)
		require.ErrorIs(t, a.Withdraw(amount, ""), domain.ErrInvalidAmount)
	}

	require.True(t, a.Balance().Equal(decimal.NewFromInt(100)))
	require.Len(t, a.Transactions(), 1)
}

func TestAmountOutOfRange(t *testing.T) {
	t.Parallel()

	huge := decimal.RequireFromString("1e400")
	large := decimal.RequireFromString("1e308")

	a := newAccount(t, domain.MaxiSavings, clockpkg.NewFake(opened))

	require.ErrorIs(t, a.Deposit(huge, ""), domain.ErrInvalidAmount)
	require.ErrorIs(t, a.Withdraw(huge, ""), domain.ErrInvalidAmount)

	require.NoError(t, a.Deposit(large, ""))
	require.ErrorIs(t, a.Deposit(large, ""), domain.ErrInvalidAmount)
	require.NoError(t, a.Withdraw(large, ""))

	require.Len(t, a.Transactions(), 2)
	require.True(t, a.Balance().IsZero())

	got, err := a.InterestEarned()
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = a.View()
	require.NoError(t, err)
}

func TestBalance(t *testing.T) {
	t.Parallel()

	a := newAccount(t, domain.Checking, clockpkg.NewSystem())
	require.NoError(t, a.Deposit(decimal.NewFromInt(100), ""))
	require.NoError(t, a.Withdraw(decimal.NewFromInt(50), ""))
	require.NoError(t, a.Deposit(decimal.NewFromInt(200), ""))

	require.True(t, a.Balance().Equal(decimal.NewFromInt(250)))

	txs := a.Transactions()
	require.Len(t, txs, 3)
	require.Equal(t, domain.WithdrawalDescription, txs[1].Description)
	require.True(t, txs[1].Amount.Equal(decimal.NewFromInt(-50)))
}

func TestCheckingInterest(t *testing.T) {
	t.Parallel()

	clock := clockpkg.NewFake(opened)
	a := newAccount(t, domain.Checking, clock)
	require.NoError(t, a.Deposit(decimal.NewFromInt(100), ""))

	got, err := a.InterestEarned()
	require.NoError(t, err)
	require.True(t, got.IsZero(), "interest = %v", got)

	clock.AdvanceDays(365)

	got, err = a.InterestEarned()
	require.NoError(t, err)

	want := 100 * (math.Pow(1+0.001/365, 365) - 1)
	require.InEpsilon(t, want, got.InexactFloat64(), 1e-9)
}

func TestMaxiSavingsInterest(t *testing.T) {
	t.Parallel()

	clock := clockpkg.NewFake(opened)
	a := newAccount(t, domain.MaxiSavings, clock)
	require.NoError(t, a.Deposit(decimal.NewFromInt(1000), ""))

	clock.AdvanceDays(20)
	require.NoError(t, a.Withdraw(decimal.NewFromInt(1), ""))
	clock.AdvanceDays(12)

	balance := 1000 * math.Pow(1+0.05/365, 20)
	balance = (balance - 1) * math.Pow(1+0.001/365, 10) * math.Pow(1+0.05/365, 2)

	got, err := a.InterestEarned()
	require.NoError(t, err)
	require.InEpsilon(t, balance-999, got.InexactFloat64(), 1e-9)
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	clock := clockpkg.NewFake(opened)
	numbers := sequencepkg.New(1)

	checking, err := New(numbers.Next(), domain.Checking, clock)
	require.NoError(t, err)

	savings, err := New(numbers.Next(), domain.Savings, clock)
	require.NoError(t, err)

	require.Equal(t, checking.Number()+1, savings.Number())

	require.NoError(t, checking.Deposit(decimal.NewFromInt(100), "deposit"))
	require.NoError(t, checking.Withdraw(decimal.NewFromInt(50), "transfer to 2"))
	require.NoError(t, savings.Deposit(decimal.NewFromInt(50), "transfer from 1"))

	require.True(t, checking.Balance().Equal(decimal.NewFromInt(50)))
	require.True(t, savings.Balance().Equal(decimal.NewFromInt(50)))
	require.Equal(t, "transfer to 2", checking.Transactions()[1].Description)
}

func TestView(t *testing.T) {
	t.Parallel()

	clock := clockpkg.NewFake(opened)
	a := newAccount(t, domain.Savings, clock)
	require.NoError(t, a.Deposit(decimal.RequireFromString("1500.25"), ""))
	clock.AdvanceDays(365)

	got, err := a.View()
	require.NoError(t, err)
	require.Equal(t, int32(1), got.ID)
	require.Equal(t, domain.Savings, got.Type)
	require.Equal(t, "1500.25", got.Balance)
	require.Len(t, got.Transactions, 1)

	earned, err := a.InterestEarned()
	require.NoError(t, err)
	require.Equal(t, earned.StringFixed(2), got.Interest)
}

func TestInterestEarnedInvalidRange(t *testing.T) {
	t.Parallel()

	clock := clockpkg.NewFake(opened)
	a := newAccount(t, domain.Checking, clock)
	require.NoError(t, a.Deposit(decimal.NewFromInt(10), ""))

	clock.Advance(-time.Hour)

	_, err := a.InterestEarned()
	require.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = a.View()
	require.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestConcurrentDeposits(t *testing.T) {
	t.Parallel()

	const n = 1000

	a := newAccount(t, domain.MaxiSavings, clockpkg.NewSystem())

	var g errgroup.Group

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if _, err := a.InterestEarned(); err != nil {
				return err
			}

			return a.Deposit(decimal.NewFromInt(1), "")
		})
	}

	require.NoError(t, g.Wait())
	require.True(t, a.Balance().Equal(decimal.NewFromInt(n)), "balance = %v", a.Balance())
	require.Len(t, a.Transactions(), n)
}
