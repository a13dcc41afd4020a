package core

import (
	"errors"
)

// Validation errors: the caller supplied malformed input.
var (
	ErrInvalidISBN      = errors.New("isbn must have 10 or 13 digits")
	ErrInvalidEmail     = errors.New("email address is malformed")
	ErrInvalidCopyCount = errors.New("copy count must not be negative")
	ErrInvalidPatronID  = errors.New("patron identification must not be blank")
)

// Uniqueness conflicts: the caller tried to register something twice.
var (
	ErrDuplicateISBN     = errors.New("a book with this isbn is already registered")
	ErrDuplicatePatronID = errors.New("a patron with this identification is already registered")
)

// Not-found errors: the caller referenced an entity that does not exist.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrPatronNotFound = errors.New("patron not found")
	ErrLoanNotFound   = errors.New("loan not found")
)

// Policy violations: the request is well-formed but the lending rules forbid it.
var (
	ErrNoCopiesAvailable = errors.New("no copies available")
	ErrHasOverdueLoan    = errors.New("patron has an overdue loan")
	ErrLoanLimitReached  = errors.New("patron reached the loan limit")
)

// State errors: the operation repeats something that already happened.
var (
	ErrAlreadyReturned = errors.New("loan was already returned")
)

// Category classifies an error by the taxonomy of the circulation engine.
type Category string

const (
	CategoryNone       Category = ""
	CategoryValidation Category = "validation"
	CategoryConflict   Category = "conflict"
	CategoryNotFound   Category = "not_found"
	CategoryPolicy     Category = "policy"
	CategoryState      Category = "state"
	CategoryInternal   Category = "internal"
)

var categories = []struct {
	category Category
	errs     []error
}{
	{CategoryValidation, []error{ErrInvalidISBN, ErrInvalidEmail, ErrInvalidCopyCount, ErrInvalidPatronID}},
	{CategoryConflict, []error{ErrDuplicateISBN, ErrDuplicatePatronID}},
	{CategoryNotFound, []error{ErrBookNotFound, ErrPatronNotFound, ErrLoanNotFound}},
	{CategoryPolicy, []error{ErrNoCopiesAvailable, ErrHasOverdueLoan, ErrLoanLimitReached}},
	{CategoryState, []error{ErrAlreadyReturned}},
}

// CategoryOf returns the taxonomy category of err.
// It returns CategoryNone for nil and CategoryInternal for errors outside the taxonomy.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNone
	}

	for _, c := range categories {
		for _, known := range c.errs {
			if errors.Is(err, known) {
				return c.category
			}
		}
	}

	return CategoryInternal
}
