package core

import (
	"time"
)

// LoanIssuedEventType is the event type identifier.
const LoanIssuedEventType = "LoanIssued"

// LoanIssued records a copy of a book lent to a patron.
type LoanIssued struct {
	EventType  EventTypeString
	LoanID     LoanIDUint
	ISBN       ISBNString
	PatronID   PatronIDString
	IssuedOn   time.Time
	DueOn      time.Time
	OccurredAt OccurredAtTS
}

// BuildLoanIssued creates a new LoanIssued event.
func BuildLoanIssued(
	loanID LoanIDUint,
	isbn ISBNString,
	patronID PatronIDString,
	issuedOn time.Time,
	dueOn time.Time,
	occurredAt time.Time,
) LoanIssued {

	return LoanIssued{
		EventType:  LoanIssuedEventType,
		LoanID:     loanID,
		ISBN:       isbn,
		PatronID:   patronID,
		IssuedOn:   DateOf(issuedOn),
		DueOn:      DateOf(dueOn),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanIssued) IsEventType() string {
	return LoanIssuedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanIssued) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanIssued) IsErrorEvent() bool {
	return false
}
