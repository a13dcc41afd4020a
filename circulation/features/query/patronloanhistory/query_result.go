package patronloanhistory

import (
	"time"

	"github.com/libcirc/circulation-go/circulation/core"
)

// LoanEntry is one loan of the patron. ReturnedOn is nil while the copy is still out.
type LoanEntry struct {
	LoanID     core.LoanIDUint
	ISBN       core.ISBNString
	IssuedOn   time.Time
	DueOn      time.Time
	ReturnedOn *time.Time
	DaysLate   int
}

// LoanHistory is the query result, loans oldest first.
type LoanHistory struct {
	PatronID         core.PatronIDString
	Loans            []LoanEntry
	LoansIssued      int
	LoansReturned    int
	RequestsRejected int
	SequenceNumber   uint
}

// GetSequenceNumber returns the highest journal sequence number the projection has seen.
func (r LoanHistory) GetSequenceNumber() uint {
	return r.SequenceNumber
}
