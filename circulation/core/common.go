package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// ISBNString represents a normalized ISBN (10 or 13 digits).
type ISBNString = string

// PatronIDString represents a patron's identification number.
type PatronIDString = string

// LoanIDUint represents a loan identifier assigned by the ledger, starting at 1.
type LoanIDUint = uint

// EventTypeString represents the type identifier of a domain event.
type EventTypeString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
