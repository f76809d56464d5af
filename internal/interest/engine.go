// Package interest computes interest accrued on an account's transaction history.
//
// The history is replayed as a sequence of balance steps. Between two
// consecutive transactions the running balance compounds daily for the number
// of whole days that elapsed, then the later transaction's amount is added.
// After the last transaction the balance compounds up to the clock's now.
// Interest is the simulated balance minus the sum of all amounts.
package interest

import (
	"fmt"
	"math"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
)

// Annual rates.
const (
	CheckingRate        = 0.001
	SavingsLowRate      = 0.001
	SavingsHighRate     = 0.002
	MaxiSavingsLowRate  = 0.001
	MaxiSavingsHighRate = 0.05
)

const (
	daysInYear = 365

	// SavingsTier is the balance from which savings earn the high rate on the excess.
	SavingsTier = 1000.0

	// PenaltyDays is the number of days after a withdrawal that maxi savings earn the low rate.
	PenaltyDays = 10
)

// state is carried across gaps for the whole replay.
type state struct {
	lowRateDaysLeft int
}

// policy describes how a balance grows over elapsed days and how a
// transaction changes the carried state.
type policy struct {
	accrue func(balance float64, days int, s *state) float64
	settle func(tx domain.Transaction, s *state)
}

var policies = map[domain.AccountType]policy{
	domain.Checking:    {accrue: accrueChecking},
	domain.Savings:     {accrue: accrueSavings},
	domain.MaxiSavings: {accrue: accrueMaxiSavings, settle: settleMaxiSavings},
}

func dailyFactor(annualRate float64) float64 {
	return 1 + annualRate/daysInYear
}

func accrueChecking(balance float64, days int, _ *state) float64 {
	return balance * math.Pow(dailyFactor(CheckingRate), float64(days))
}

// SavingsDay applies one day of savings interest.
// Below the tier the whole balance earns the low rate, from the tier upwards
// the first 1000 earns the low rate and the rest earns the high rate.
func SavingsDay(balance float64) float64 {
	if balance < SavingsTier {
		return balance * dailyFactor(SavingsLowRate)
	}

	return SavingsTier*dailyFactor(SavingsLowRate) + (balance-SavingsTier)*dailyFactor(SavingsHighRate)
}

// The tier can be crossed inside a gap, so savings compound one day at a time.
func accrueSavings(balance float64, days int, _ *state) float64 {
	for i := 0; i < days; i++ {
		balance = SavingsDay(balance)
	}

	return balance
}

func accrueMaxiSavings(balance float64, days int, s *state) float64 {
	low := days
	if s.lowRateDaysLeft < low {
		low = s.lowRateDaysLeft
	}

	s.lowRateDaysLeft -= low

	balance *= math.Pow(dailyFactor(MaxiSavingsLowRate), float64(low))
	balance *= math.Pow(dailyFactor(MaxiSavingsHighRate), float64(days-low))

	return balance
}

func settleMaxiSavings(tx domain.Transaction, s *state) {
	if tx.IsWithdrawal() {
		s.lowRateDaysLeft = PenaltyDays
	}
}

// Engine computes accrued interest against a clock.
type Engine struct {
	clock clockpkg.Clock
}

// NewEngine returns an engine reading elapsed days from the given clock.
func NewEngine(clock clockpkg.Clock) *Engine {
	return &Engine{clock: clock}
}

// Earned returns the interest accrued up to now on the chronological history
// under the policy of the account type. An empty history earns nothing.
//
// Earned fails with domain.ErrInvalidRange when the history is out of order
// or lies in the clock's future, and with domain.ErrInterestOverflow when the
// amounts exceed the float64 range.
func (e *Engine) Earned(history []domain.Transaction, t domain.AccountType) (float64, error) {
	p, ok := policies[t]
	if !ok {
		return 0, fmt.Errorf("%w: %v", domain.ErrUnknownAccountType, t)
	}

	if len(history) == 0 {
		return 0, nil
	}

	var s state

	curr := history[0]
	balance := curr.Amount.InexactFloat64()
	principal := balance

	for _, next := range history[1:] {
		days, err := e.clock.DaysBetween(curr.CreatedAt, next.CreatedAt)
		if err != nil {
			return 0, fmt.Errorf("gap before transaction at %v: %w", next.CreatedAt, err)
		}

		balance = p.accrue(balance, days, &s)

		amount := next.Amount.InexactFloat64()
		balance += amount
		principal += amount

		if p.settle != nil {
			p.settle(next, &s)
		}

		curr = next
	}

	days, err := e.clock.DaysSince(curr.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("gap after last transaction at %v: %w", curr.CreatedAt, err)
	}

	balance = p.accrue(balance, days, &s)

	earned := balance - principal
	if math.IsInf(earned, 0) || math.IsNaN(earned) {
		return 0, domain.ErrInterestOverflow
	}

	return earned, nil
}
