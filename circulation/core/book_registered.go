package core

import (
	"time"
)

// BookRegisteredEventType is the event type identifier.
const BookRegisteredEventType = "BookRegistered"

// BookRegistered records a book added to the catalog.
type BookRegistered struct {
	EventType   EventTypeString
	ISBN        ISBNString
	Title       string
	Author      string
	Category    string
	TotalCopies int
	OccurredAt  OccurredAtTS
}

// BuildBookRegistered creates a new BookRegistered event.
func BuildBookRegistered(book Book, occurredAt time.Time) BookRegistered {
	return BookRegistered{
		EventType:   BookRegisteredEventType,
		ISBN:        book.ISBN,
		Title:       book.Title,
		Author:      book.Author,
		Category:    book.Category,
		TotalCopies: book.TotalCopies,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookRegistered) IsEventType() string {
	return BookRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookRegistered) IsErrorEvent() bool {
	return false
}
