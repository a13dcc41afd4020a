package issueloan

import (
	"fmt"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/eventstore"
)

// State is what the lending rules need to know about the requested book and patron.
type State struct {
	BookFound       bool
	ISBN            core.ISBNString
	AvailableCopies int
	PatronFound     bool
	PatronID        core.PatronIDString
	ActiveLoans     int
	HasOverdueLoan  bool
	LoanLimit       int
	LoanPeriodDays  int
	NextLoanID      core.LoanIDUint
}

// Decide applies the lending rules to an issue request. It is a pure function.
//
// Business Rules, checked in this order, the first failing one wins:
//
//	GIVEN: a book found by ISBN and a patron found by id or name
//	WHEN: IssueLoan command is received
//	THEN: LoanIssued event is generated, due after the loan period
//	ERROR: ErrBookNotFound if no book has the ISBN
//	ERROR: ErrNoCopiesAvailable if every copy is lent
//	ERROR: ErrPatronNotFound if no patron matches the key
//	ERROR: ErrHasOverdueLoan if the patron holds an overdue loan, even when also at the limit
//	ERROR: ErrLoanLimitReached if the patron already holds LoanLimit loans
func Decide(s State, command Command) core.DecisionResult {
	if !s.BookFound {
		return refuse(s, command, core.ErrBookNotFound)
	}

	if s.AvailableCopies <= 0 {
		return refuse(s, command, core.ErrNoCopiesAvailable)
	}

	if !s.PatronFound {
		return refuse(s, command, core.ErrPatronNotFound)
	}

	if s.HasOverdueLoan {
		return refuse(s, command, core.ErrHasOverdueLoan)
	}

	policy := core.Policy{LoanLimit: s.LoanLimit, LoanPeriodDays: s.LoanPeriodDays}

	if !policy.CanBorrow(s.ActiveLoans) {
		return refuse(s, command, core.ErrLoanLimitReached)
	}

	issuedOn := command.Today

	return core.SuccessDecision(
		core.BuildLoanIssued(
			s.NextLoanID,
			s.ISBN,
			s.PatronID,
			issuedOn,
			policy.DueDateFor(issuedOn),
			command.OccurredAt,
		),
	)
}

func refuse(s State, command Command, reason error) core.DecisionResult {
	isbn := command.ISBN
	if s.BookFound {
		isbn = s.ISBN
	}

	event := core.BuildIssuingLoanFailed(isbn, command.PatronKey, s.PatronID, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

// BuildEventFilter selects the journal events about the book or about the patron. Appending
// under this filter fails if another decision about either was journaled meanwhile.
func BuildEventFilter(isbn core.ISBNString, patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookRegisteredEventType,
			core.LoanIssuedEventType,
			core.LoanReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("ISBN", isbn)).
		OrMatching().
		AnyEventTypeOf(
			core.PatronRegisteredEventType,
			core.LoanIssuedEventType,
			core.LoanReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("PatronID", patronID)).
		Finalize()
}
