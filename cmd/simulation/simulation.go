package main

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/lending"
)

const (
	logMsgSeedRejected   = "fixture entry rejected"
	logMsgDailySummary   = "daily circulation summary"
	logMsgPatronHistory  = "patron loan history"
	logMsgSimulationDone = "simulation finished"
)

// Report collects what happened during a run.
type Report struct {
	Days     []lending.Summary
	Issued   int
	Returned int
	Refusals map[core.Category]int
}

// Simulation plays simulated days of lending against one Engine.
type Simulation struct {
	engine   *lending.Engine
	clock    *simulatedClock
	random   *rand.Rand
	logger   *slog.Logger
	settings Settings
}

// NewSimulation creates a Simulation. The engine must use clock as its clock.
func NewSimulation(engine *lending.Engine, clock *simulatedClock, logger *slog.Logger, settings Settings) *Simulation {
	return &Simulation{
		engine:   engine,
		clock:    clock,
		random:   rand.New(rand.NewPCG(settings.Seed, settings.Seed^0x9e3779b97f4a7c15)),
		logger:   logger,
		settings: settings,
	}
}

// Seed registers the books and patrons of fixture.
// Entries the engine rejects are logged and skipped; any other failure aborts.
func (s *Simulation) Seed(ctx context.Context, fixture Fixture) error {
	for _, book := range fixture.Books {
		if _, err := s.engine.RegisterBook(ctx, book.toBook()); err != nil {
			if core.CategoryOf(err) == core.CategoryInternal {
				return err
			}

			s.logger.WarnContext(ctx, logMsgSeedRejected, "isbn", book.ISBN, "error", err.Error())
		}
	}

	for _, patron := range fixture.Patrons {
		if _, err := s.engine.RegisterPatron(ctx, patron.toPatron()); err != nil {
			if core.CategoryOf(err) == core.CategoryInternal {
				return err
			}

			s.logger.WarnContext(ctx, logMsgSeedRejected, "patron_id", patron.ID, "error", err.Error())
		}
	}

	return nil
}

// Run plays the configured number of days. It stops early when ctx is done.
func (s *Simulation) Run(ctx context.Context) (Report, error) {
	report := Report{Refusals: map[core.Category]int{}}

	for day := 1; day <= s.settings.Days; day++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := s.playDay(ctx, &report); err != nil {
			return report, err
		}

		summary := s.engine.Summary()
		report.Days = append(report.Days, summary)

		s.logger.InfoContext(ctx, logMsgDailySummary,
			"day", day,
			"date", s.engine.Today().Format(startLayout),
			"books", summary.Books,
			"patrons", summary.Patrons,
			"loans", summary.Loans,
			"active_loans", summary.ActiveLoans,
			"overdue_loans", summary.OverdueLoans,
			"available_copies", summary.AvailableCopies,
			"total_copies", summary.TotalCopies,
		)

		s.clock.nextDay()
	}

	if err := s.logHistories(ctx); err != nil {
		return report, err
	}

	s.logger.InfoContext(ctx, logMsgSimulationDone,
		"days", len(report.Days),
		"issued", report.Issued,
		"returned", report.Returned,
		"refused_not_found", report.Refusals[core.CategoryNotFound],
		"refused_policy", report.Refusals[core.CategoryPolicy],
		"refused_state", report.Refusals[core.CategoryState],
	)

	return report, nil
}

func (s *Simulation) playDay(ctx context.Context, report *Report) error {
	for _, loan := range s.engine.ActiveLoans() {
		if s.random.Float64()*100 >= s.settings.ReturnRate {
			continue
		}

		_, returnErr := s.engine.ReturnLoan(ctx, loan.ID)
		if err := s.count(report, &report.Returned, returnErr); err != nil {
			return err
		}
	}

	books := s.engine.Books()
	patrons := s.engine.Patrons()

	if len(books) == 0 || len(patrons) == 0 {
		return nil
	}

	for range s.settings.IssuesPerDay {
		book := books[s.random.IntN(len(books))]
		patron := patrons[s.random.IntN(len(patrons))]

		// half of the requests name the patron instead of the id
		patronKey := patron.ID
		if s.random.IntN(2) == 0 {
			patronKey = patron.FullName
		}

		_, issueErr := s.engine.IssueLoan(ctx, book.ISBN, patronKey)
		if err := s.count(report, &report.Issued, issueErr); err != nil {
			return err
		}
	}

	return nil
}

// count tallies the outcome of one request and passes on infrastructure errors.
func (s *Simulation) count(report *Report, succeeded *int, err error) error {
	category := core.CategoryOf(err)

	switch category {
	case core.CategoryNone:
		*succeeded++
	case core.CategoryInternal:
		return err
	default:
		report.Refusals[category]++
	}

	return nil
}

func (s *Simulation) logHistories(ctx context.Context) error {
	for _, patron := range s.engine.Patrons() {
		history, err := s.engine.LoanHistory(ctx, patron.ID)
		if err != nil {
			return err
		}

		s.logger.DebugContext(ctx, logMsgPatronHistory,
			"patron_id", history.PatronID,
			"loans_issued", history.LoansIssued,
			"loans_returned", history.LoansReturned,
			"requests_rejected", history.RequestsRejected,
		)
	}

	return nil
}
