package patronloanhistory

import (
	"github.com/libcirc/circulation-go/circulation/core"
)

const (
	queryType = "PatronLoanHistory"
)

// Query represents the intent to read the loan history of one patron.
type Query struct {
	PatronID core.PatronIDString
}

// BuildQuery creates a new Query with the provided patron id.
func BuildQuery(patronID core.PatronIDString) Query {
	return Query{
		PatronID: patronID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
