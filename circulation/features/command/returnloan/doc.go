// Package returnloan implements the Return Loan use case: a lent copy comes back.
//
// The pure Decide function refuses unknown loans and loans already returned. An accepted
// return is journaled as LoanReturned before the ledger records it, which puts the copy back
// on the shelf and releases the patron's loan in one step.
package returnloan
