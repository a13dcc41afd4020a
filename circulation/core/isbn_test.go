package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcirc/circulation-go/circulation/core"
)

func Test_NormalizeISBN_AcceptsValidInput(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected core.ISBNString
	}{
		{name: "hyphenated isbn-10", raw: "0-306-40615-2", expected: "0306406152"},
		{name: "hyphenated isbn-13", raw: "978-0-306-40615-7", expected: "9780306406157"},
		{name: "plain isbn-13", raw: "9780306406157", expected: "9780306406157"},
		{name: "surrounding whitespace", raw: "  0306406152 \t", expected: "0306406152"},
		{name: "whitespace and hyphens", raw: " 0-306-40615-2 ", expected: "0306406152"},
		{name: "surrounding control characters", raw: "\x000306406152\r\n", expected: "0306406152"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			isbn, err := core.NormalizeISBN(tc.raw)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, isbn)
		})
	}
}

func Test_NormalizeISBN_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "too short", raw: "12345"},
		{name: "eleven digits", raw: "12345678901"},
		{name: "fourteen digits", raw: "12345678901234"},
		{name: "letter inside", raw: "030640615X"},
		{name: "inner space", raw: "0306 406152"},
		{name: "empty", raw: ""},
		{name: "only hyphens", raw: "----------"},
		{name: "non-ascii digits", raw: "٠٣٠٦٤٠٦١٥٢"},
		{name: "leading no-break space", raw: "\u00a00306406152"},
		{name: "trailing ideographic space", raw: "0306406152\u3000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			isbn, err := core.NormalizeISBN(tc.raw)

			// assert
			assert.ErrorIs(t, err, core.ErrInvalidISBN)
			assert.Empty(t, isbn)
		})
	}
}
