package lending

import (
	"context"
	"time"

	"github.com/libcirc/circulation-go/circulation/catalog"
	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/directory"
	"github.com/libcirc/circulation-go/circulation/features/command/issueloan"
	"github.com/libcirc/circulation-go/circulation/features/command/returnloan"
	"github.com/libcirc/circulation-go/circulation/features/query/patronloanhistory"
	"github.com/libcirc/circulation-go/circulation/ledger"
	"github.com/libcirc/circulation-go/circulation/shell"
	"github.com/libcirc/circulation-go/circulation/shell/observable"
	"github.com/libcirc/circulation-go/eventstore"
	"github.com/libcirc/circulation-go/eventstore/memengine"
)

// Engine orchestrates the catalog, the directory and the loan ledger, and journals every
// decision it takes. Create it with NewEngine.
type Engine struct {
	clock  core.Clock
	policy core.Policy

	journal   shell.Journal
	catalog   *catalog.Catalog
	directory *directory.Directory
	ledger    *ledger.Ledger

	issueLoan   shell.CoreCommandHandler[issueloan.Command]
	returnLoan  shell.CoreCommandHandler[returnloan.Command]
	loanHistory patronloanhistory.QueryHandler

	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
}

// NewEngine creates an Engine with an empty library.
func NewEngine(options ...Option) (*Engine, error) {
	e := &Engine{
		clock:  core.SystemClock{},
		policy: core.DefaultPolicy(),
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	if e.journal == nil {
		journal, err := memengine.NewEventStore(e.journalOptions()...)
		if err != nil {
			return nil, err
		}

		e.journal = journal
	}

	e.catalog = catalog.New()
	e.directory = directory.New()
	e.ledger = ledger.New(e.catalog, e.directory, e.policy)

	issueHandler, err := observable.NewCommandWrapper[issueloan.Command](
		issueloan.NewCommandHandler(e.journal, e.catalog, e.directory, e.ledger, e.policy),
		e.issueLoanObservers()...,
	)
	if err != nil {
		return nil, err
	}

	returnHandler, err := observable.NewCommandWrapper[returnloan.Command](
		returnloan.NewCommandHandler(e.journal, e.ledger),
		e.returnLoanObservers()...,
	)
	if err != nil {
		return nil, err
	}

	e.issueLoan = issueHandler
	e.returnLoan = returnHandler
	e.loanHistory = patronloanhistory.NewQueryHandler(e.journal)

	return e, nil
}

// Today is the engine's current calendar day in the clock's location.
func (e *Engine) Today() time.Time {
	return core.DateOf(e.clock.Now())
}

// Policy returns the lending policy the engine enforces.
func (e *Engine) Policy() core.Policy {
	return e.policy
}

// RegisterBook adds a book to the catalog with all copies available and journals BookRegistered.
// Errors: ErrInvalidISBN, ErrInvalidCopyCount, ErrDuplicateISBN. Rejected books are not journaled.
func (e *Engine) RegisterBook(ctx context.Context, book core.Book) (*core.Book, error) {
	candidate, err := e.catalog.Check(book)
	if err != nil {
		return nil, err
	}

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("ISBN", candidate.ISBN)).
		Finalize()

	if err = e.record(ctx, filter, core.BuildBookRegistered(*candidate, e.clock.Now())); err != nil {
		return nil, err
	}

	return e.catalog.Register(book)
}

// RegisterPatron adds a patron with no loans and journals PatronRegistered.
// Errors: ErrInvalidPatronID, ErrInvalidEmail, ErrDuplicatePatronID.
func (e *Engine) RegisterPatron(ctx context.Context, patron core.Patron) (*core.Patron, error) {
	candidate, err := e.directory.Check(patron)
	if err != nil {
		return nil, err
	}

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.PatronRegisteredEventType).
		AndAnyPredicateOf(eventstore.P("PatronID", candidate.ID)).
		Finalize()

	if err = e.record(ctx, filter, core.BuildPatronRegistered(*candidate, e.clock.Now())); err != nil {
		return nil, err
	}

	return e.directory.Register(patron)
}

func (e *Engine) record(ctx context.Context, filter eventstore.Filter, event core.DomainEvent) error {
	_, maxSequenceNumber, err := e.journal.Query(ctx, filter)
	if err != nil {
		return err
	}

	storableEvent, err := shell.StorableEventFrom(event, shell.NewCommandMetadata())
	if err != nil {
		return err
	}

	return e.journal.Append(ctx, filter, maxSequenceNumber, storableEvent)
}

// FindBook looks a book up by ISBN, in any accepted notation.
func (e *Engine) FindBook(isbn string) (*core.Book, bool) {
	return e.catalog.FindByISBN(isbn)
}

// SearchBooks returns the books whose title, author or category contains text, ignoring case.
func (e *Engine) SearchBooks(text string) []*core.Book {
	return e.catalog.Search(text)
}

// Books returns all books in registration order.
func (e *Engine) Books() []*core.Book {
	return e.catalog.Books()
}

// FindPatron looks a patron up by identification number or full name.
func (e *Engine) FindPatron(key string) (*core.Patron, bool) {
	return e.directory.Find(key)
}

// Patrons returns all patrons in registration order.
func (e *Engine) Patrons() []*core.Patron {
	return e.directory.Patrons()
}

// IssueLoan lends a copy of the book with isbn to the patron found by patronKey, today.
//
// Rules are checked in this order and the first failure is returned:
// ErrBookNotFound, ErrNoCopiesAvailable, ErrPatronNotFound, ErrHasOverdueLoan, ErrLoanLimitReached.
// A refusal changes nothing but the journal.
func (e *Engine) IssueLoan(ctx context.Context, isbn string, patronKey string) (LoanView, error) {
	result, err := e.issueLoan.Handle(ctx, issueloan.BuildCommand(isbn, patronKey, e.clock.Now()))
	if err != nil {
		return LoanView{}, err
	}

	return e.loanView(result.LoanID), nil
}

// ReturnLoan records the return of loan id today. Errors: ErrLoanNotFound, ErrAlreadyReturned.
func (e *Engine) ReturnLoan(ctx context.Context, id core.LoanIDUint) (LoanView, error) {
	result, err := e.returnLoan.Handle(ctx, returnloan.BuildCommand(id, e.clock.Now()))
	if err != nil {
		return LoanView{}, err
	}

	return e.loanView(result.LoanID), nil
}

func (e *Engine) loanView(id core.LoanIDUint) LoanView {
	loan, _ := e.ledger.FindByID(id)

	return viewOf(loan, e.Today())
}

// FindLoan returns a loan as of today.
func (e *Engine) FindLoan(id core.LoanIDUint) (LoanView, bool) {
	loan, found := e.ledger.FindByID(id)
	if !found {
		return LoanView{}, false
	}

	return viewOf(loan, e.Today()), true
}

// Loans returns every loan ever issued as of today, in ledger order.
func (e *Engine) Loans() []LoanView {
	return viewsOf(e.ledger.Loans(), e.Today())
}

// LoansOf returns the loans of one patron, returned ones included, in ledger order.
func (e *Engine) LoansOf(patronID core.PatronIDString) []LoanView {
	return viewsOf(e.ledger.LoansOf(patronID), e.Today())
}

// ActiveLoans returns the loans not yet returned, active or overdue today, in ledger order.
func (e *Engine) ActiveLoans() []LoanView {
	today := e.Today()

	return viewsOf(e.ledger.ActiveLoans(today), today)
}

// OverdueLoans returns the loans overdue today, in ledger order.
func (e *Engine) OverdueLoans() []LoanView {
	today := e.Today()

	return viewsOf(e.ledger.OverdueLoans(today), today)
}

// Summary reports the counts of the library as of today.
func (e *Engine) Summary() Summary {
	today := e.Today()
	inventory := e.catalog.Inventory()

	return Summary{
		Books:           e.catalog.Count(),
		Patrons:         e.directory.Count(),
		Loans:           e.ledger.Count(),
		ActiveLoans:     len(e.ledger.ActiveLoans(today)),
		OverdueLoans:    len(e.ledger.OverdueLoans(today)),
		TotalCopies:     inventory.TotalCopies,
		AvailableCopies: inventory.AvailableCopies,
	}
}

// LoanHistory projects the journal into the loan history of one patron.
func (e *Engine) LoanHistory(ctx context.Context, patronID core.PatronIDString) (patronloanhistory.LoanHistory, error) {
	return e.loanHistory.Handle(ctx, patronloanhistory.BuildQuery(patronID))
}

func (e *Engine) journalOptions() []memengine.Option {
	var options []memengine.Option

	if e.logger != nil {
		options = append(options, memengine.WithLogger(e.logger))
	}

	if e.contextualLogger != nil {
		options = append(options, memengine.WithContextualLogger(e.contextualLogger))
	}

	if e.metricsCollector != nil {
		options = append(options, memengine.WithMetrics(e.metricsCollector))
	}

	return options
}

func (e *Engine) issueLoanObservers() []observable.CommandOption[issueloan.Command] {
	return []observable.CommandOption[issueloan.Command]{
		observable.WithCommandLogging[issueloan.Command](e.logger),
		observable.WithCommandContextualLogging[issueloan.Command](e.contextualLogger),
		observable.WithCommandMetrics[issueloan.Command](e.metricsCollector),
		observable.WithCommandTracing[issueloan.Command](e.tracingCollector),
	}
}

func (e *Engine) returnLoanObservers() []observable.CommandOption[returnloan.Command] {
	return []observable.CommandOption[returnloan.Command]{
		observable.WithCommandLogging[returnloan.Command](e.logger),
		observable.WithCommandContextualLogging[returnloan.Command](e.contextualLogger),
		observable.WithCommandMetrics[returnloan.Command](e.metricsCollector),
		observable.WithCommandTracing[returnloan.Command](e.tracingCollector),
	}
}
