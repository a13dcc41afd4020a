package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libcirc/circulation-go/circulation/core"
)

func Test_IsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{email: "ana@example.com", valid: true},
		{email: "ana.maria-lopez@mail.example.org", valid: true},
		{email: "user_1@sub.domain.io", valid: true},
		{email: "ana@example.c", valid: false},
		{email: "ana.example.com", valid: false},
		{email: "@example.com", valid: false},
		{email: "ana@.com", valid: false},
		{email: "ana@example.123", valid: false},
		{email: "ana maria@example.com", valid: false},
		{email: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.valid, core.IsValidEmail(tc.email))
		})
	}
}
