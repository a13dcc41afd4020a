// Package patronloanhistory implements the Patron Loan History query.
//
// It projects the journal into the list of every loan one patron ever held, returned ones
// included, plus how many of the patron's requests the lending rules refused.
package patronloanhistory
