package core

import (
	"time"
)

// IssuingLoanFailedEventType is the event type identifier.
const IssuingLoanFailedEventType = "IssuingLoanFailed"

// IssuingLoanFailed records a loan request rejected by the lending rules.
// PatronID is empty when the patron could not be resolved.
type IssuingLoanFailed struct {
	EventType   EventTypeString
	ISBN        string
	PatronKey   string
	PatronID    PatronIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildIssuingLoanFailed creates a new IssuingLoanFailed event.
func BuildIssuingLoanFailed(
	isbn string,
	patronKey string,
	patronID PatronIDString,
	failureInfo string,
	occurredAt time.Time,
) IssuingLoanFailed {

	return IssuingLoanFailed{
		EventType:   IssuingLoanFailedEventType,
		ISBN:        isbn,
		PatronKey:   patronKey,
		PatronID:    patronID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e IssuingLoanFailed) IsEventType() string {
	return IssuingLoanFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e IssuingLoanFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected request.
func (e IssuingLoanFailed) IsErrorEvent() bool {
	return true
}
