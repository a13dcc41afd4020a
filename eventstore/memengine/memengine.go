package memengine

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/libcirc/circulation-go/eventstore"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgContextDone         = "journal operation aborted"
	logMsgOperation           = "journal operation: "
	logAttrError              = "error"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
	logAttrMaxSequence        = "max_sequence"
	operationQuery            = "query"
	operationAppend           = "append"
)

// EventStore is an append-only, in-memory journal of storable events.
// The zero value is not usable; create one with NewEventStore.
type EventStore struct {
	mu               *sync.RWMutex
	events           *eventstore.StorableEvents
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) (EventStore, error) {
	es := EventStore{
		mu:     &sync.RWMutex{},
		events: &eventstore.StorableEvents{},
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// Query returns the events selected by filter, oldest first, and the highest sequence number
// among them (0 if none) as the MaxSequenceNumberUint for a later Append.
func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := es.checkContext(ctx, operationQuery); err != nil {
		return nil, 0, err
	}

	start := time.Now()

	es.mu.RLock()
	selected, maxSequenceNumber := es.selectMatching(filter)
	es.mu.RUnlock()

	duration := time.Since(start)
	es.logOperation(ctx, logMsgQueryCompleted,
		logAttrEventCount, len(selected),
		logAttrMaxSequence, maxSequenceNumber,
		logAttrDurationMS, toMilliseconds(duration))
	es.recordDuration(ctx, metricQueryDuration, duration, operationQuery, statusSuccess)
	es.recordValue(ctx, metricEventsQueried, float64(len(selected)), operationQuery, statusSuccess)

	return selected, maxSequenceNumber, nil
}

// Append stores the events with consecutive sequence numbers, all or nothing.
//
// filter must be the one the caller queried with before deciding, expectedMaxSequenceNumber the
// max sequence number that query returned. If the journal now holds a newer event matching
// filter, nothing is stored and eventstore.ErrConcurrencyConflict is returned.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvents ...eventstore.StorableEvent,
) error {

	if len(storableEvents) == 0 {
		return eventstore.ErrNoEventsToAppend
	}

	if err := es.checkContext(ctx, operationAppend); err != nil {
		return err
	}

	start := time.Now()

	es.mu.Lock()
	_, actualMaxSequenceNumber := es.selectMatching(filter)
	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.mu.Unlock()

		es.logOperation(ctx, logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber)
		es.recordCounter(ctx, metricConcurrencyConflicts, operationAppend, statusConflict)

		return eventstore.ErrConcurrencyConflict
	}

	next := uint(len(*es.events))
	for _, event := range storableEvents {
		next++
		event.SequenceNumber = next
		*es.events = append(*es.events, event)
	}
	es.mu.Unlock()

	duration := time.Since(start)
	es.logOperation(ctx, logMsgEventsAppended,
		logAttrEventCount, len(storableEvents),
		logAttrDurationMS, toMilliseconds(duration))
	es.recordDuration(ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	es.recordValue(ctx, metricEventsAppended, float64(len(storableEvents)), operationAppend, statusSuccess)

	return nil
}

// Len returns the number of events in the journal.
func (es EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(*es.events)
}

// selectMatching must be called while holding the lock.
func (es EventStore) selectMatching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	selected := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, event := range *es.events {
		if !filter.Matches(event) {
			continue
		}

		event.PayloadJSON = slices.Clone(event.PayloadJSON)
		event.MetadataJSON = slices.Clone(event.MetadataJSON)
		selected = append(selected, event)
		maxSequenceNumber = event.SequenceNumber
	}

	return selected, maxSequenceNumber
}

func (es EventStore) checkContext(ctx context.Context, operation string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		es.logError(ctx, logMsgContextDone, ctxErr, logAttrOperation, operation)
		es.recordCounter(ctx, metricCanceledOperations, operation, statusError)

		return errors.Join(eventstore.ErrContextDone, ctxErr)
	}

	return nil
}
