package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookRegisteredEventType:
		return unmarshalPayload[core.BookRegistered](storableEvent.PayloadJSON)

	case core.PatronRegisteredEventType:
		return unmarshalPayload[core.PatronRegistered](storableEvent.PayloadJSON)

	case core.LoanIssuedEventType:
		return unmarshalPayload[core.LoanIssued](storableEvent.PayloadJSON)

	case core.LoanReturnedEventType:
		return unmarshalPayload[core.LoanReturned](storableEvent.PayloadJSON)

	case core.IssuingLoanFailedEventType:
		return unmarshalPayload[core.IssuingLoanFailed](storableEvent.PayloadJSON)

	case core.ReturningLoanFailedEventType:
		return unmarshalPayload[core.ReturningLoanFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
