package issueloan

import (
	"context"
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/shell"
)

// Catalog resolves books. *catalog.Catalog implements it.
type Catalog interface {
	FindByISBN(isbn string) (*core.Book, bool)
}

// Directory resolves patrons by id or full name. *directory.Directory implements it.
type Directory interface {
	Find(key string) (*core.Patron, bool)
}

// Ledger is the part of the loan ledger this use case needs. *ledger.Ledger implements it.
type Ledger interface {
	NextID() core.LoanIDUint
	HasOverdue(patronID core.PatronIDString, today time.Time) bool
	Create(isbn core.ISBNString, patronID core.PatronIDString, today time.Time) core.Loan
}

// CommandHandler runs the workflow Query -> Project -> Decide -> Append -> Apply.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	journal   shell.Journal
	catalog   Catalog
	directory Directory
	ledger    Ledger
	policy    core.Policy
}

// NewCommandHandler creates a CommandHandler enforcing policy.
func NewCommandHandler(
	journal shell.Journal,
	catalog Catalog,
	directory Directory,
	ledger Ledger,
	policy core.Policy,
) CommandHandler {

	return CommandHandler{
		journal:   journal,
		catalog:   catalog,
		directory: directory,
		ledger:    ledger,
		policy:    policy,
	}
}

// Handle decides the command and journals the decision. Only an accepted loan changes the
// stores: one copy less available, one more active loan for the patron, a new ledger entry.
//
// A refusal returns NewRejectedResult and an error wrapping the core sentinel of the broken rule.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	book, patron := h.resolve(command)
	s := h.project(book, patron, command)

	// Query phase, for the optimistic guard of the append below
	filter := BuildEventFilter(s.ISBN, s.PatronID)

	_, maxSequenceNumber, err := h.journal.Query(ctx, filter)
	if err != nil {
		return shell.NewErrorResult(), err
	}

	// Business logic phase - delegate to pure core function
	result := Decide(s, command)

	// Append phase - the decision is journaled before anything changes
	storableEvent, err := shell.StorableEventFrom(result.Event, shell.NewCommandMetadata())
	if err != nil {
		return shell.NewErrorResult(), err
	}

	if err = h.journal.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return shell.NewErrorResult(), err
	}

	if decisionErr := result.HasError(); decisionErr != nil {
		return shell.NewRejectedResult(0), decisionErr
	}

	// Apply phase - cannot fail, Decide saw a free copy
	issued := result.Event.(core.LoanIssued)

	if err = book.LendCopy(); err != nil {
		return shell.NewErrorResult(), err
	}

	patron.TakeLoan()
	loan := h.ledger.Create(issued.ISBN, issued.PatronID, issued.IssuedOn)

	return shell.NewSuccessResult(loan.ID), nil
}

func (h CommandHandler) resolve(command Command) (*core.Book, *core.Patron) {
	book, _ := h.catalog.FindByISBN(command.ISBN)
	patron, _ := h.directory.Find(command.PatronKey)

	return book, patron
}

func (h CommandHandler) project(book *core.Book, patron *core.Patron, command Command) State {
	s := State{
		LoanLimit:      h.policy.LoanLimit,
		LoanPeriodDays: h.policy.LoanPeriodDays,
		NextLoanID:     h.ledger.NextID(),
	}

	if book != nil {
		s.BookFound = true
		s.ISBN = book.ISBN
		s.AvailableCopies = book.AvailableCopies
	}

	if patron != nil {
		s.PatronFound = true
		s.PatronID = patron.ID
		s.ActiveLoans = patron.ActiveLoans
		s.HasOverdueLoan = h.ledger.HasOverdue(patron.ID, command.Today)
	}

	return s
}
