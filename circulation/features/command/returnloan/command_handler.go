package returnloan

import (
	"context"
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/shell"
)

// Ledger is the part of the loan ledger this use case needs. *ledger.Ledger implements it.
type Ledger interface {
	FindByID(id core.LoanIDUint) (core.Loan, bool)
	RecordReturn(id core.LoanIDUint, today time.Time) (core.Loan, error)
}

// CommandHandler runs the workflow Query -> Project -> Decide -> Append -> Apply.
type CommandHandler struct {
	journal shell.Journal
	ledger  Ledger
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(journal shell.Journal, ledger Ledger) CommandHandler {
	return CommandHandler{
		journal: journal,
		ledger:  ledger,
	}
}

// Handle decides the return and journals the decision. An accepted return is then recorded
// in the ledger. A refusal returns NewRejectedResult and an error wrapping the core sentinel.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	filter := BuildEventFilter(command.LoanID)

	_, maxSequenceNumber, err := h.journal.Query(ctx, filter)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	loan, found := h.ledger.FindByID(command.LoanID)
	result := Decide(State{LoanFound: found, Loan: loan}, command)

	storableEvent, err := shell.StorableEventFrom(result.Event, shell.NewCommandMetadata())
	if err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.journal.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return shell.NewErrorResult(), err
	}

	if decisionErr := result.HasError(); decisionErr != nil {
		return shell.NewRejectedResult(command.LoanID), decisionErr
	}

	returned, err := h.ledger.RecordReturn(command.LoanID, command.Today)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	return shell.NewSuccessResult(returned.ID), nil
}
