package core

import (
	"regexp"
)

// emailPattern: one or more of [word chars, dot, hyphen], '@', the same class again,
// a dot, then at least two ASCII letters.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether email matches the local@domain.tld rule.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
