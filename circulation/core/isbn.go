package core

import (
	"strings"
)

const (
	isbn10Length = 10
	isbn13Length = 13
)

// NormalizeISBN strips all hyphens and surrounding ASCII whitespace and control characters
// from raw and requires the remainder to consist of exactly 10 or 13 decimal digits.
// Unicode spaces such as U+00A0 are not trimmed. No check digit validation is done.
func NormalizeISBN(raw string) (ISBNString, error) {
	isbn := strings.TrimFunc(strings.ReplaceAll(raw, "-", ""), isASCIISpaceOrControl)

	if len(isbn) != isbn10Length && len(isbn) != isbn13Length {
		return "", ErrInvalidISBN
	}

	for i := 0; i < len(isbn); i++ {
		if isbn[i] < '0' || isbn[i] > '9' {
			return "", ErrInvalidISBN
		}
	}

	return isbn, nil
}

func isASCIISpaceOrControl(r rune) bool {
	return r <= ' '
}
