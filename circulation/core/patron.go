package core

import (
	"strings"
)

// Patron is a registered library user.
// Invariant: 0 <= ActiveLoans <= the configured loan limit.
type Patron struct {
	ID          PatronIDString
	FullName    string
	Email       string
	Phone       string
	Address     string
	ActiveLoans int
}

// NewPatron returns a Patron without loans. It rejects a blank id and a malformed email.
func NewPatron(id string, fullName string, email string, phone string, address string) (*Patron, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidPatronID
	}

	if !IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	return &Patron{
		ID:       id,
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Address:  address,
	}, nil
}

// TakeLoan counts one more active loan.
func (p *Patron) TakeLoan() {
	p.ActiveLoans++
}

// ReleaseLoan counts one active loan less, never going below zero.
func (p *Patron) ReleaseLoan() {
	if p.ActiveLoans > 0 {
		p.ActiveLoans--
	}
}
