package core

// DecisionResult is the outcome of a pure Decide function.
//
// Construct it only with SuccessDecision or ErrorDecision.
type DecisionResult struct {
	Outcome string      // "success" or "error"
	Event   DomainEvent // the event to journal
	Err     error
}

const (
	successOutcome = "success"
	errorOutcome   = "error"
)

// SuccessDecision creates a DecisionResult for an accepted command.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{
		Outcome: successOutcome,
		Event:   event,
	}
}

// ErrorDecision creates a DecisionResult for a rejected command, carrying the error event to journal.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{
		Outcome: errorOutcome,
		Event:   event,
		Err:     err,
	}
}

// HasEventToAppend returns true if there is an event to append to the journal.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Event != nil
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
