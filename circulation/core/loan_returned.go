package core

import (
	"time"
)

// LoanReturnedEventType is the event type identifier.
const LoanReturnedEventType = "LoanReturned"

// LoanReturned records a lent copy brought back.
type LoanReturned struct {
	EventType  EventTypeString
	LoanID     LoanIDUint
	ISBN       ISBNString
	PatronID   PatronIDString
	ReturnedOn time.Time
	DaysLate   int
	OccurredAt OccurredAtTS
}

// BuildLoanReturned creates a new LoanReturned event.
func BuildLoanReturned(loan Loan, returnedOn time.Time, occurredAt time.Time) LoanReturned {
	return LoanReturned{
		EventType:  LoanReturnedEventType,
		LoanID:     loan.ID,
		ISBN:       loan.ISBN,
		PatronID:   loan.PatronID,
		ReturnedOn: DateOf(returnedOn),
		DaysLate:   loan.DaysLate(returnedOn),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanReturned) IsEventType() string {
	return LoanReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanReturned) IsErrorEvent() bool {
	return false
}
