package shell

import (
	"context"

	"github.com/libcirc/circulation-go/eventstore"
)

// Command is implemented by every command of the circulation engine.
// CommandType names the command in logs, metrics and spans.
type Command interface {
	CommandType() string
}

// CoreCommandHandler processes a command without any observability concerns.
// observable.CommandWrapper decorates it.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// QueriesEvents is the read side of the journal needed by query handlers.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// Journal is the part of the journal the command handlers need.
type Journal interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvents ...eventstore.StorableEvent,
	) error
}
