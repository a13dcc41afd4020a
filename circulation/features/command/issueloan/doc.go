// Package issueloan implements the Issue Loan use case.
//
// A patron, found by identification number or full name, borrows one copy of a book found by
// ISBN. The CommandHandler projects the relevant state from the catalog, the directory and
// the ledger, lets the pure Decide function apply the lending rules, journals the decision
// and only then mutates the stores. Refusals are journaled as IssuingLoanFailed events and
// leave the stores untouched.
package issueloan
