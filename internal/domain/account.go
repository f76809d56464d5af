// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"

	"github.com/go-petr/interest-bank/pkg/clockpkg"
)

var (
	// ErrInvalidAmount indicates a non-positive or malformed amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidRange indicates that a later instant precedes an earlier one.
	ErrInvalidRange = clockpkg.ErrInvalidRange
	// ErrUnknownAccountType indicates an account type outside of the supported policies.
	ErrUnknownAccountType = errors.New("unknown account type")
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInterestOverflow indicates that the accrued interest is not a finite number.
	ErrInterestOverflow = errors.New("interest out of range")
)

// AccountType selects the interest policy of an account.
type AccountType int

// Supported account types.
const (
	Checking AccountType = iota
	Savings
	MaxiSavings
)

// AccountTypes holds all the supported account types.
var AccountTypes = []AccountType{
	Checking,
	Savings,
	MaxiSavings,
}

// String returns the statement label of the account type.
func (t AccountType) String() string {
	switch t {
	case Checking:
		return "Checking"
	case Savings:
		return "Savings"
	case MaxiSavings:
		return "Maxi Savings"
	default:
		return fmt.Sprintf("AccountType(%d)", int(t))
	}
}

// Code returns the machine readable name of the account type.
func (t AccountType) Code() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case MaxiSavings:
		return "maxi_savings"
	default:
		return ""
	}
}

// IsValid returns true if the account type is supported.
func (t AccountType) IsValid() bool {
	return t >= Checking && t <= MaxiSavings
}

// ParseAccountType returns the account type for the given code.
func ParseAccountType(code string) (AccountType, error) {
	for _, t := range AccountTypes {
		if t.Code() == code {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAccountType, code)
}

// MarshalText implements encoding.TextMarshaler.
func (t AccountType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, ErrUnknownAccountType
	}

	return []byte(t.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// AccountView is a point in time copy of an account.
type AccountView struct {
	ID           int32         `json:"id"`
	Type         AccountType   `json:"type"`
	Balance      string        `json:"balance"`
	Interest     string        `json:"interest"`
	Transactions []Transaction `json:"transactions"`
}
