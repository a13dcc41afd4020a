package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict is returned by Append when events matching the filter were appended
	// after the expected max sequence number was read.
	ErrConcurrencyConflict = errors.New("concurrency conflict, events matching the filter were appended meanwhile")

	// ErrNoEventsToAppend is returned by Append when called without events.
	ErrNoEventsToAppend = errors.New("no events to append")

	// ErrContextDone wraps a canceled or expired context of a journal operation.
	ErrContextDone = errors.New("context is done")
)

// MaxSequenceNumberUint is a type alias for uint, representing the highest sequence number among
// the events selected by a Filter. It is 0 when no event matches.
type MaxSequenceNumberUint = uint
