package lending

import (
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
)

// LoanView is a loan with its status and lateness derived for one day.
type LoanView struct {
	core.Loan
	Status   core.LoanStatus
	DaysLate int
}

func viewOf(loan core.Loan, today time.Time) LoanView {
	return LoanView{
		Loan:     loan,
		Status:   loan.Status(today),
		DaysLate: loan.DaysLate(today),
	}
}

func viewsOf(loans []core.Loan, today time.Time) []LoanView {
	views := make([]LoanView, 0, len(loans))

	for _, loan := range loans {
		views = append(views, viewOf(loan, today))
	}

	return views
}

// Summary is the circulation report of one day.
type Summary struct {
	Books           int
	Patrons         int
	Loans           int
	ActiveLoans     int
	OverdueLoans    int
	TotalCopies     int
	AvailableCopies int
}
