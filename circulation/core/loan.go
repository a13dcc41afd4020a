package core

import (
	"time"
)

// LoanStatus is the derived lifecycle state of a Loan.
type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
	LoanStatusReturned LoanStatus = "RETURNED"
)

// Loan records one copy of a book lent to a patron.
// Book and patron are referenced by identifier only.
type Loan struct {
	ID       LoanIDUint
	ISBN     ISBNString
	PatronID PatronIDString
	IssuedOn time.Time
	DueOn    time.Time
	// ReturnedOn is nil until the loan is returned.
	ReturnedOn *time.Time
}

// IsReturned reports whether a return has been recorded.
func (l Loan) IsReturned() bool {
	return l.ReturnedOn != nil
}

// Status derives the loan status on the given day.
func (l Loan) Status(today time.Time) LoanStatus {
	return StatusOf(l.DueOn, l.ReturnedOn, today)
}

// DaysLate is the number of whole days past the due date, 0 unless the loan is overdue.
func (l Loan) DaysLate(today time.Time) int {
	if l.Status(today) != LoanStatusOverdue {
		return 0
	}

	return DaysBetween(l.DueOn, today)
}

// StatusOf is the pure status rule: RETURNED once returnedOn is set, otherwise
// ACTIVE while today is on or before dueOn, otherwise OVERDUE. Dates compare as calendar days.
func StatusOf(dueOn time.Time, returnedOn *time.Time, today time.Time) LoanStatus {
	if returnedOn != nil {
		return LoanStatusReturned
	}

	if DateOf(today).After(DateOf(dueOn)) {
		return LoanStatusOverdue
	}

	return LoanStatusActive
}
