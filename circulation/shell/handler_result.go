package shell

import (
	"github.com/libcirc/circulation-go/circulation/core"
)

// HandlerResult is the outcome of a command handler execution, next to its error.
type HandlerResult struct {
	// LoanID is the loan the command issued or returned, 0 if it never got that far.
	LoanID core.LoanIDUint

	// Rejected is true when the lending rules refused the command. The refusal was journaled
	// and the returned error names the rule.
	Rejected bool
}

// NewSuccessResult creates a HandlerResult for an accepted command.
func NewSuccessResult(loanID core.LoanIDUint) HandlerResult {
	return HandlerResult{LoanID: loanID}
}

// NewRejectedResult creates a HandlerResult for a command refused by the lending rules.
func NewRejectedResult(loanID core.LoanIDUint) HandlerResult {
	return HandlerResult{LoanID: loanID, Rejected: true}
}

// NewErrorResult creates a HandlerResult for a command that failed in the infrastructure.
func NewErrorResult() HandlerResult {
	return HandlerResult{}
}
