package returnloan

import (
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
)

const (
	commandType = "ReturnLoan"
)

// Command represents the intent to return the copy lent under a loan.
// Today is the calendar day of the return in the requester's location.
type Command struct {
	LoanID     core.LoanIDUint
	Today      time.Time
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(loanID core.LoanIDUint, occurredAt time.Time) Command {
	return Command{
		LoanID:     loanID,
		Today:      core.DateOf(occurredAt),
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
