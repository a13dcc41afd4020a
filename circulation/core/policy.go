package core

import (
	"errors"
	"time"
)

const (
	// DefaultLoanLimit is the maximum number of simultaneous active loans per patron.
	DefaultLoanLimit = 2

	// DefaultLoanPeriodDays is the number of days from issue date to due date.
	DefaultLoanPeriodDays = 14
)

var (
	// ErrInvalidLoanLimit is returned when a policy allows less than one loan per patron.
	ErrInvalidLoanLimit = errors.New("loan limit must be at least 1")

	// ErrInvalidLoanPeriod is returned when a policy has a loan period shorter than one day.
	ErrInvalidLoanPeriod = errors.New("loan period must be at least 1 day")
)

// Policy holds the lending rules that are constants of the library.
type Policy struct {
	LoanLimit      int
	LoanPeriodDays int
}

// DefaultPolicy returns the library's standard policy: 2 loans per patron, 14 days per loan.
func DefaultPolicy() Policy {
	return Policy{
		LoanLimit:      DefaultLoanLimit,
		LoanPeriodDays: DefaultLoanPeriodDays,
	}
}

// Validate reports whether the policy can be enforced.
func (p Policy) Validate() error {
	if p.LoanLimit < 1 {
		return ErrInvalidLoanLimit
	}

	if p.LoanPeriodDays < 1 {
		return ErrInvalidLoanPeriod
	}

	return nil
}

// CanBorrow reports whether a patron holding activeLoans may take one more.
func (p Policy) CanBorrow(activeLoans int) bool {
	return activeLoans < p.LoanLimit
}

// DueDateFor returns the due date of a loan issued on the given day.
func (p Policy) DueDateFor(issuedOn time.Time) time.Time {
	return DateOf(issuedOn).AddDate(0, 0, p.LoanPeriodDays)
}
