package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcirc/circulation-go/circulation/core"
)

func Test_NewBook_StartsWithAllCopiesAvailable(t *testing.T) {
	// act
	book, err := core.NewBook("0-306-40615-2", "Cien años de soledad", "García Márquez", "Sudamericana", 1967, "Novel", 3)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "0306406152", book.ISBN)
	assert.Equal(t, 3, book.TotalCopies)
	assert.Equal(t, 3, book.AvailableCopies)
}

func Test_NewBook_RejectsInvalidInput(t *testing.T) {
	_, err := core.NewBook("12345", "t", "a", "p", 2000, "c", 1)
	assert.ErrorIs(t, err, core.ErrInvalidISBN)

	_, err = core.NewBook("0306406152", "t", "a", "p", 2000, "c", -1)
	assert.ErrorIs(t, err, core.ErrInvalidCopyCount)
}

func Test_Book_LendAndReturnKeepCopyInvariant(t *testing.T) {
	// arrange
	book, err := core.NewBook("0306406152", "t", "a", "p", 2000, "c", 1)
	require.NoError(t, err)

	// act & assert
	require.NoError(t, book.LendCopy())
	assert.Equal(t, 0, book.AvailableCopies)
	assert.ErrorIs(t, book.LendCopy(), core.ErrNoCopiesAvailable)
	assert.Equal(t, 0, book.AvailableCopies)

	book.ReturnCopy()
	book.ReturnCopy()
	assert.Equal(t, 1, book.AvailableCopies)
}

func Test_NewPatron_ValidatesInput(t *testing.T) {
	patron, err := core.NewPatron("P-1", "Ana Lopez", "ana@example.com", "555-1234", "Main St 1")
	require.NoError(t, err)
	assert.Equal(t, 0, patron.ActiveLoans)

	_, err = core.NewPatron("  ", "Ana Lopez", "ana@example.com", "", "")
	assert.ErrorIs(t, err, core.ErrInvalidPatronID)

	_, err = core.NewPatron("P-2", "Ana Lopez", "ana-at-example.com", "", "")
	assert.ErrorIs(t, err, core.ErrInvalidEmail)
}

func Test_Patron_LoanCounterNeverGoesNegative(t *testing.T) {
	// arrange
	patron, err := core.NewPatron("P-1", "Ana Lopez", "ana@example.com", "", "")
	require.NoError(t, err)

	// act & assert
	patron.TakeLoan()
	assert.True(t, core.DefaultPolicy().CanBorrow(patron.ActiveLoans))
	patron.TakeLoan()
	assert.False(t, core.DefaultPolicy().CanBorrow(patron.ActiveLoans))

	patron.ReleaseLoan()
	patron.ReleaseLoan()
	patron.ReleaseLoan()
	assert.Equal(t, 0, patron.ActiveLoans)
}

func Test_CategoryOf(t *testing.T) {
	testCases := []struct {
		err      error
		expected core.Category
	}{
		{err: nil, expected: core.CategoryNone},
		{err: core.ErrInvalidISBN, expected: core.CategoryValidation},
		{err: core.ErrInvalidEmail, expected: core.CategoryValidation},
		{err: core.ErrDuplicateISBN, expected: core.CategoryConflict},
		{err: core.ErrDuplicatePatronID, expected: core.CategoryConflict},
		{err: core.ErrBookNotFound, expected: core.CategoryNotFound},
		{err: core.ErrLoanNotFound, expected: core.CategoryNotFound},
		{err: core.ErrNoCopiesAvailable, expected: core.CategoryPolicy},
		{err: core.ErrHasOverdueLoan, expected: core.CategoryPolicy},
		{err: core.ErrLoanLimitReached, expected: core.CategoryPolicy},
		{err: core.ErrAlreadyReturned, expected: core.CategoryState},
		{err: assert.AnError, expected: core.CategoryInternal},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, core.CategoryOf(tc.err))
	}
}
