package core

import (
	"time"
)

// ReturningLoanFailedEventType is the event type identifier.
const ReturningLoanFailedEventType = "ReturningLoanFailed"

// ReturningLoanFailed records a rejected return.
// PatronID is empty when the loan is unknown.
type ReturningLoanFailed struct {
	EventType   EventTypeString
	LoanID      LoanIDUint
	PatronID    PatronIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningLoanFailed creates a new ReturningLoanFailed event.
func BuildReturningLoanFailed(
	loanID LoanIDUint,
	patronID PatronIDString,
	failureInfo string,
	occurredAt time.Time,
) ReturningLoanFailed {

	return ReturningLoanFailed{
		EventType:   ReturningLoanFailedEventType,
		LoanID:      loanID,
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReturningLoanFailed) IsEventType() string {
	return ReturningLoanFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningLoanFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected request.
func (e ReturningLoanFailed) IsErrorEvent() bool {
	return true
}
