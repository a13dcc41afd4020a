package returnloan

import (
	"fmt"
	"strconv"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/eventstore"
)

// State is the loan as the ledger knows it.
type State struct {
	LoanFound bool
	Loan      core.Loan
}

// Decide implements the business logic of a return. It is a pure function.
//
// Business Rules:
//
//	GIVEN: a loan that is active or overdue
//	WHEN: ReturnLoan command is received
//	THEN: LoanReturned event is generated, with the days it came back late
//	ERROR: ErrLoanNotFound if the ledger has no such loan
//	ERROR: ErrAlreadyReturned if a return was recorded before
func Decide(s State, command Command) core.DecisionResult {
	if !s.LoanFound {
		return refuse(s, command, core.ErrLoanNotFound)
	}

	if s.Loan.IsReturned() {
		return refuse(s, command, core.ErrAlreadyReturned)
	}

	return core.SuccessDecision(
		core.BuildLoanReturned(s.Loan, command.Today, command.OccurredAt),
	)
}

func refuse(s State, command Command, reason error) core.DecisionResult {
	event := core.BuildReturningLoanFailed(command.LoanID, s.Loan.PatronID, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

// BuildEventFilter selects the journal events about one loan.
func BuildEventFilter(loanID core.LoanIDUint) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.LoanIssuedEventType,
			core.LoanReturnedEventType,
			core.ReturningLoanFailedEventType,
		).
		AndAnyPredicateOf(eventstore.P("LoanID", strconv.FormatUint(uint64(loanID), 10))).
		Finalize()
}
