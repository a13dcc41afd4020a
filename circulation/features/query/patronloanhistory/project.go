package patronloanhistory

import (
	"slices"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/eventstore"
)

// Project replays the history of one patron into a LoanHistory. It is a pure function.
//
// Query Logic:
//
//	GIVEN: a patron with PatronID
//	WHEN: PatronLoanHistory query is executed
//	THEN: every LoanIssued of the patron becomes a LoanEntry, completed by its LoanReturned
//	COUNTS: loans issued, loans returned, refused issue and return requests
//	ORDER: by loan id, which is the order the loans were issued in
func Project(history core.DomainEvents, query Query, maxSeq uint) LoanHistory {
	result := LoanHistory{
		PatronID:       query.PatronID,
		Loans:          make([]LoanEntry, 0),
		SequenceNumber: maxSeq,
	}

	entries := make(map[core.LoanIDUint]*LoanEntry)

	for _, event := range history {
		switch e := event.(type) {
		case core.LoanIssued:
			if e.PatronID != query.PatronID {
				continue
			}

			entries[e.LoanID] = &LoanEntry{
				LoanID:   e.LoanID,
				ISBN:     e.ISBN,
				IssuedOn: e.IssuedOn,
				DueOn:    e.DueOn,
			}
			result.LoansIssued++

		case core.LoanReturned:
			entry, found := entries[e.LoanID]
			if !found {
				continue
			}

			returnedOn := e.ReturnedOn
			entry.ReturnedOn = &returnedOn
			entry.DaysLate = e.DaysLate
			result.LoansReturned++

		case core.IssuingLoanFailed:
			if e.PatronID == query.PatronID {
				result.RequestsRejected++
			}

		case core.ReturningLoanFailed:
			if e.PatronID == query.PatronID {
				result.RequestsRejected++
			}
		}
	}

	for _, entry := range entries {
		result.Loans = append(result.Loans, *entry)
	}

	slices.SortFunc(result.Loans, func(a, b LoanEntry) int {
		return int(a.LoanID) - int(b.LoanID)
	})

	return result
}

// BuildEventFilter creates the filter for querying the loan events of one patron.
func BuildEventFilter(patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.LoanIssuedEventType,
			core.LoanReturnedEventType,
			core.IssuingLoanFailedEventType,
			core.ReturningLoanFailedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("PatronID", patronID),
		).
		Finalize()
}
