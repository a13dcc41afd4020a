// Package ledger owns the loan records of the library.
//
// Loans reference their book and patron by identifier. The ledger resolves them through the
// catalog and the directory only when a return has to update availability and loan counts.
package ledger

import (
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
)

// BookFinder resolves a book by ISBN. *catalog.Catalog implements it.
type BookFinder interface {
	FindByISBN(isbn string) (*core.Book, bool)
}

// PatronFinder resolves a patron by identification number. *directory.Directory implements it.
type PatronFinder interface {
	FindByID(id core.PatronIDString) (*core.Patron, bool)
}

// Ledger holds loans in creation order. Ids start at 1 and are never reused.
type Ledger struct {
	books   BookFinder
	patrons PatronFinder
	policy  core.Policy
	loans   []*core.Loan
	byID    map[core.LoanIDUint]*core.Loan
}

// New creates an empty Ledger that computes due dates with policy.
func New(books BookFinder, patrons PatronFinder, policy core.Policy) *Ledger {
	return &Ledger{
		books:   books,
		patrons: patrons,
		policy:  policy,
		byID:    make(map[core.LoanIDUint]*core.Loan),
	}
}

// NextID returns the id the next Create will assign.
func (l *Ledger) NextID() core.LoanIDUint {
	return core.LoanIDUint(len(l.loans)) + 1
}

// Create records a new loan issued today and due after the loan period. It cannot fail;
// the caller has already checked the lending rules.
func (l *Ledger) Create(isbn core.ISBNString, patronID core.PatronIDString, today time.Time) core.Loan {
	loan := &core.Loan{
		ID:       l.NextID(),
		ISBN:     isbn,
		PatronID: patronID,
		IssuedOn: core.DateOf(today),
		DueOn:    l.policy.DueDateFor(today),
	}

	l.loans = append(l.loans, loan)
	l.byID[loan.ID] = loan

	return *loan
}

// FindByID returns a copy of the loan.
func (l *Ledger) FindByID(id core.LoanIDUint) (core.Loan, bool) {
	loan, found := l.byID[id]
	if !found {
		return core.Loan{}, false
	}

	return *loan, true
}

// RecordReturn marks the loan returned today, puts the copy back on the shelf and releases the
// patron's loan, all or nothing. Every check happens before the first mutation.
//
// Errors: ErrLoanNotFound, ErrAlreadyReturned, and ErrBookNotFound or ErrPatronNotFound
// if a reference no longer resolves.
func (l *Ledger) RecordReturn(id core.LoanIDUint, today time.Time) (core.Loan, error) {
	loan, err := l.CheckReturn(id)
	if err != nil {
		return core.Loan{}, err
	}

	book, found := l.books.FindByISBN(loan.ISBN)
	if !found {
		return core.Loan{}, core.ErrBookNotFound
	}

	patron, found := l.patrons.FindByID(loan.PatronID)
	if !found {
		return core.Loan{}, core.ErrPatronNotFound
	}

	returnedOn := core.DateOf(today)
	l.byID[id].ReturnedOn = &returnedOn
	book.ReturnCopy()
	patron.ReleaseLoan()

	return *l.byID[id], nil
}

// CheckReturn reports why the loan could not be returned, without changing anything.
func (l *Ledger) CheckReturn(id core.LoanIDUint) (core.Loan, error) {
	loan, found := l.FindByID(id)
	if !found {
		return core.Loan{}, core.ErrLoanNotFound
	}

	if loan.IsReturned() {
		return loan, core.ErrAlreadyReturned
	}

	return loan, nil
}

// ActiveLoans returns the loans not yet returned, active or overdue, in ledger order.
func (l *Ledger) ActiveLoans(today time.Time) []core.Loan {
	return l.selectLoans(func(loan *core.Loan) bool {
		return loan.Status(today) != core.LoanStatusReturned
	})
}

// OverdueLoans returns the loans whose status is OVERDUE today, in ledger order.
func (l *Ledger) OverdueLoans(today time.Time) []core.Loan {
	return l.selectLoans(func(loan *core.Loan) bool {
		return loan.Status(today) == core.LoanStatusOverdue
	})
}

// HasOverdue reports whether the patron holds at least one OVERDUE loan today.
func (l *Ledger) HasOverdue(patronID core.PatronIDString, today time.Time) bool {
	for _, loan := range l.loans {
		if loan.PatronID == patronID && loan.Status(today) == core.LoanStatusOverdue {
			return true
		}
	}

	return false
}

// LoansOf returns all loans of one patron, returned ones included, in ledger order.
func (l *Ledger) LoansOf(patronID core.PatronIDString) []core.Loan {
	return l.selectLoans(func(loan *core.Loan) bool {
		return loan.PatronID == patronID
	})
}

// Loans returns all loans in ledger order.
func (l *Ledger) Loans() []core.Loan {
	return l.selectLoans(func(*core.Loan) bool { return true })
}

// Count returns the number of loans ever created.
func (l *Ledger) Count() int {
	return len(l.loans)
}

func (l *Ledger) selectLoans(keep func(loan *core.Loan) bool) []core.Loan {
	selected := make([]core.Loan, 0)

	for _, loan := range l.loans {
		if keep(loan) {
			selected = append(selected, *loan)
		}
	}

	return selected
}
