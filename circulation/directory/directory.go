// Package directory owns the registered patrons of the library.
package directory

import (
	"golang.org/x/text/cases"

	"github.com/libcirc/circulation-go/circulation/core"
)

// Directory holds patrons in registration order, keyed by identification number.
type Directory struct {
	patrons []*core.Patron
	byID    map[core.PatronIDString]*core.Patron
	fold    cases.Caser
}

// New creates an empty Directory.
func New() *Directory {
	return &Directory{
		byID: make(map[core.PatronIDString]*core.Patron),
		fold: cases.Fold(),
	}
}

// Register adds patron with no active loans. It fails with the first error Check reports.
func (d *Directory) Register(patron core.Patron) (*core.Patron, error) {
	stored, err := d.Check(patron)
	if err != nil {
		return nil, err
	}

	d.patrons = append(d.patrons, stored)
	d.byID[stored.ID] = stored

	return stored, nil
}

// Check builds the patron Register would store, without storing it.
// Errors, in this order: ErrInvalidPatronID, ErrInvalidEmail, ErrDuplicatePatronID.
// Only the identification number must be unique.
func (d *Directory) Check(patron core.Patron) (*core.Patron, error) {
	candidate, err := core.NewPatron(patron.ID, patron.FullName, patron.Email, patron.Phone, patron.Address)
	if err != nil {
		return nil, err
	}

	if _, exists := d.byID[candidate.ID]; exists {
		return nil, core.ErrDuplicatePatronID
	}

	return candidate, nil
}

// Find returns the first patron, in registration order, whose id equals key exactly or
// whose full name equals key ignoring case.
func (d *Directory) Find(key string) (*core.Patron, bool) {
	foldedKey := d.fold.String(key)

	for _, patron := range d.patrons {
		if patron.ID == key || d.fold.String(patron.FullName) == foldedKey {
			return patron, true
		}
	}

	return nil, false
}

// FindByID returns the patron with exactly this identification number.
func (d *Directory) FindByID(id core.PatronIDString) (*core.Patron, bool) {
	patron, found := d.byID[id]

	return patron, found
}

// Patrons returns all patrons in registration order.
func (d *Directory) Patrons() []*core.Patron {
	return append([]*core.Patron(nil), d.patrons...)
}

// Count returns the number of registered patrons.
func (d *Directory) Count() int {
	return len(d.patrons)
}
