package core

import (
	"time"
)

// PatronRegisteredEventType is the event type identifier.
const PatronRegisteredEventType = "PatronRegistered"

// PatronRegistered records a patron added to the directory.
type PatronRegistered struct {
	EventType  EventTypeString
	PatronID   PatronIDString
	FullName   string
	Email      string
	OccurredAt OccurredAtTS
}

// BuildPatronRegistered creates a new PatronRegistered event.
func BuildPatronRegistered(patron Patron, occurredAt time.Time) PatronRegistered {
	return PatronRegistered{
		EventType:  PatronRegisteredEventType,
		PatronID:   patron.ID,
		FullName:   patron.FullName,
		Email:      patron.Email,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e PatronRegistered) IsEventType() string {
	return PatronRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e PatronRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e PatronRegistered) IsErrorEvent() bool {
	return false
}
