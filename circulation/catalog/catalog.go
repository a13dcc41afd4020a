// Package catalog owns the books of the library.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/libcirc/circulation-go/circulation/core"
)

// Inventory sums copies across the catalog.
type Inventory struct {
	TotalCopies     int
	AvailableCopies int
}

// Catalog holds books in registration order, keyed by normalized ISBN.
// It does no locking; the lending engine is its only writer.
type Catalog struct {
	books  []*core.Book
	byISBN map[core.ISBNString]*core.Book
	fold   cases.Caser
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		byISBN: make(map[core.ISBNString]*core.Book),
		fold:   cases.Fold(),
	}
}

// Register adds book under its normalized ISBN with all copies available.
// It fails with the first error Check reports.
func (c *Catalog) Register(book core.Book) (*core.Book, error) {
	stored, err := c.Check(book)
	if err != nil {
		return nil, err
	}

	c.books = append(c.books, stored)
	c.byISBN[stored.ISBN] = stored

	return stored, nil
}

// Check builds the book Register would store, without storing it.
// Validity is checked before uniqueness: ErrInvalidISBN, then ErrInvalidCopyCount, then ErrDuplicateISBN.
func (c *Catalog) Check(book core.Book) (*core.Book, error) {
	candidate, err := core.NewBook(
		book.ISBN,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublicationYear,
		book.Category,
		book.TotalCopies,
	)
	if err != nil {
		return nil, err
	}

	if _, exists := c.byISBN[candidate.ISBN]; exists {
		return nil, core.ErrDuplicateISBN
	}

	return candidate, nil
}

// FindByISBN looks up a book by ISBN. The key is normalized first, so "0-306-40615-2"
// finds the book stored as "0306406152". An ISBN that cannot be normalized is never found.
func (c *Catalog) FindByISBN(isbn string) (*core.Book, bool) {
	normalized, err := core.NormalizeISBN(isbn)
	if err != nil {
		return nil, false
	}

	book, found := c.byISBN[normalized]

	return book, found
}

// Search returns the books whose title, author or category contains text, ignoring case,
// in registration order. The result is empty, never nil, when nothing matches.
func (c *Catalog) Search(text string) []*core.Book {
	needle := c.fold.String(text)
	found := make([]*core.Book, 0)

	for _, book := range c.books {
		if c.contains(book.Title, needle) || c.contains(book.Author, needle) || c.contains(book.Category, needle) {
			found = append(found, book)
		}
	}

	return found
}

func (c *Catalog) contains(field string, foldedNeedle string) bool {
	return strings.Contains(c.fold.String(field), foldedNeedle)
}

// Books returns all books in registration order.
func (c *Catalog) Books() []*core.Book {
	return append([]*core.Book(nil), c.books...)
}

// Count returns the number of registered books.
func (c *Catalog) Count() int {
	return len(c.books)
}

// Inventory sums total and available copies of all books.
func (c *Catalog) Inventory() Inventory {
	var inv Inventory

	for _, book := range c.books {
		inv.TotalCopies += book.TotalCopies
		inv.AvailableCopies += book.AvailableCopies
	}

	return inv
}
