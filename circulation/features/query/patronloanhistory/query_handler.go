package patronloanhistory

import (
	"context"

	"github.com/libcirc/circulation-go/circulation/shell"
)

// QueryHandler runs the workflow Query -> Unmarshal -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler reading from eventStore.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle queries the patron's events and projects them.
func (h QueryHandler) Handle(ctx context.Context, query Query) (LoanHistory, error) {
	filter := BuildEventFilter(query.PatronID)

	// Query phase
	storableEvents, maxSeq, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return LoanHistory{}, err
	}

	// Unmarshal phase
	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return LoanHistory{}, err
	}

	// Projection phase
	return Project(history, query, maxSeq), nil
}
