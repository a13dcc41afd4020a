package patronloanhistory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/features/query/patronloanhistory"
)

var day0 = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func givenLoanIssued(loanID core.LoanIDUint, isbn string, patronID string, issuedOn time.Time) core.LoanIssued {
	return core.BuildLoanIssued(loanID, isbn, patronID, issuedOn, issuedOn.AddDate(0, 0, 14), issuedOn)
}

func givenLoanReturned(issued core.LoanIssued, returnedOn time.Time) core.LoanReturned {
	loan := core.Loan{ID: issued.LoanID, ISBN: issued.ISBN, PatronID: issued.PatronID, IssuedOn: issued.IssuedOn, DueOn: issued.DueOn}

	return core.BuildLoanReturned(loan, returnedOn, returnedOn)
}

func Test_Project_ListsLoansOldestFirstWithReturns(t *testing.T) {
	// arrange
	first := givenLoanIssued(1, "0306406152", "P-1", day0)
	foreign := givenLoanIssued(2, "0306406152", "P-2", day0)
	second := givenLoanIssued(3, "9780306406157", "P-1", day0.AddDate(0, 0, 1))

	history := core.DomainEvents{
		first,
		foreign,
		second,
		givenLoanReturned(first, day0.AddDate(0, 0, 17)),
		givenLoanReturned(foreign, day0.AddDate(0, 0, 2)),
		core.BuildIssuingLoanFailed("0201633612", "P-1", "P-1", core.ErrLoanLimitReached.Error(), day0),
		core.BuildReturningLoanFailed(1, "P-1", core.ErrAlreadyReturned.Error(), day0.AddDate(0, 0, 18)),
		core.BuildIssuingLoanFailed("0201633612", "P-2", "P-2", core.ErrLoanLimitReached.Error(), day0),
	}

	// act
	result := patronloanhistory.Project(history, patronloanhistory.BuildQuery("P-1"), 8)

	// assert
	assert.Equal(t, "P-1", result.PatronID)
	assert.Equal(t, uint(8), result.GetSequenceNumber())
	assert.Equal(t, 2, result.LoansIssued)
	assert.Equal(t, 1, result.LoansReturned)
	assert.Equal(t, 2, result.RequestsRejected)

	require.Len(t, result.Loans, 2)
	assert.Equal(t, core.LoanIDUint(1), result.Loans[0].LoanID)
	require.NotNil(t, result.Loans[0].ReturnedOn)
	assert.Equal(t, day0.AddDate(0, 0, 17), *result.Loans[0].ReturnedOn)
	assert.Equal(t, 3, result.Loans[0].DaysLate)

	assert.Equal(t, core.LoanIDUint(3), result.Loans[1].LoanID)
	assert.Nil(t, result.Loans[1].ReturnedOn)
	assert.Equal(t, day0.AddDate(0, 0, 15), result.Loans[1].DueOn)
}

func Test_Project_EmptyHistory(t *testing.T) {
	// act
	result := patronloanhistory.Project(core.DomainEvents{}, patronloanhistory.BuildQuery("P-1"), 0)

	// assert
	assert.NotNil(t, result.Loans)
	assert.Empty(t, result.Loans)
	assert.Zero(t, result.LoansIssued)
}
