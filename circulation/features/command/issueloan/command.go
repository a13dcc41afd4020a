package issueloan

import (
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
)

const (
	commandType = "IssueLoan"
)

// Command represents the intent to lend a copy of a book to a patron.
// PatronKey is the patron's identification number or full name.
// Today is the calendar day of the request in the requester's location; OccurredAt is the
// same instant normalized to UTC for the journal.
type Command struct {
	ISBN       string
	PatronKey  string
	Today      time.Time
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(isbn string, patronKey string, occurredAt time.Time) Command {
	return Command{
		ISBN:       isbn,
		PatronKey:  patronKey,
		Today:      core.DateOf(occurredAt),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
