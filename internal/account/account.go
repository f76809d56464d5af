// Package account provides bank accounts that accrue interest on their transaction history.
package account

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/internal/interest"
	"github.com/go-petr/interest-bank/internal/txlog"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
)

// Account holds the transaction history of one account and its interest policy.
// It is safe for concurrent use.
type Account struct {
	number      int32
	accountType domain.AccountType
	log         *txlog.Log
	engine      *interest.Engine
}

// New returns an empty account with the given number and type.
func New(number int32, accountType domain.AccountType, clock clockpkg.Clock) (*Account, error) {
	if !accountType.IsValid() {
		return nil, domain.ErrUnknownAccountType
	}

	return &Account{
		number:      number,
		accountType: accountType,
		log:         txlog.New(clock),
		engine:      interest.NewEngine(clock),
	}, nil
}

// Number returns the unique account number.
func (a *Account) Number() int32 {
	return a.number
}

// Type returns the account type.
func (a *Account) Type() domain.AccountType {
	return a.accountType
}

func finite(d decimal.Decimal) bool {
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// checkAmount rejects amounts that are not positive or that would take the
// amount or the balance out of the range interest is computed in.
func (a *Account) checkAmount(amount, signed decimal.Decimal) error {
	if !amount.IsPositive() || !finite(amount) || !finite(a.log.Sum().Add(signed)) {
		return domain.ErrInvalidAmount
	}

	return nil
}

// Deposit adds amount to the account.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if err := a.checkAmount(amount, amount); err != nil {
		return err
	}

	_, err := a.log.Append(amount, description)

	return err
}

// Withdraw takes amount out of the account.
// The balance is allowed to go negative.
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	if err := a.checkAmount(amount, amount.Neg()); err != nil {
		return err
	}

	_, err := a.log.Append(amount.Neg(), description)

	return err
}

// Balance returns the sum of all transactions.
func (a *Account) Balance() decimal.Decimal {
	return a.log.Sum()
}

// Transactions returns a copy of the transaction history.
func (a *Account) Transactions() []domain.Transaction {
	return a.log.Snapshot()
}

// InterestEarned returns the interest accrued on the account up to now.
func (a *Account) InterestEarned() (decimal.Decimal, error) {
	earned, err := a.engine.Earned(a.log.Snapshot(), a.accountType)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromFloat(earned), nil
}

// View returns a point in time copy of the account.
func (a *Account) View() (domain.AccountView, error) {
	transactions := a.log.Snapshot()

	earned, err := a.engine.Earned(transactions, a.accountType)
	if err != nil {
		return domain.AccountView{}, err
	}

	balance := decimal.Zero
	for _, tx := range transactions {
		balance = balance.Add(tx.Amount)
	}

	return domain.AccountView{
		ID:           a.number,
		Type:         a.accountType,
		Balance:      balance.String(),
		Interest:     decimal.NewFromFloat(earned).StringFixed(2),
		Transactions: transactions,
	}, nil
}
