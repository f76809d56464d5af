package domain

import "errors"

var (
	// ErrNilCustomer indicates an attempt to register an absent customer.
	ErrNilCustomer = errors.New("customer is nil")
	// ErrEmptyName indicates a customer without a name.
	ErrEmptyName = errors.New("customer name is empty")
	// ErrCustomerNotFound indicates that the customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerAlreadyExists indicates that the customer with the given name already exists.
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

// CustomerView holds customer data exposed outside of the bank.
type CustomerView struct {
	Name             string `json:"name"`
	NumberOfAccounts int    `json:"number_of_accounts"`
	Summary          string `json:"summary"`
}

// BankSummary holds aggregated data across all customers.
type BankSummary struct {
	Summary           string `json:"summary"`
	TotalInterestPaid string `json:"total_interest_paid"`
	FirstCustomer     string `json:"first_customer,omitempty"`
}
