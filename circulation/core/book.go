package core

// Book is a cataloged title with a fixed number of physical copies.
// Invariant: 0 <= AvailableCopies <= TotalCopies.
type Book struct {
	ISBN            ISBNString
	Title           string
	Author          string
	Publisher       string
	PublicationYear int
	Category        string
	TotalCopies     int
	AvailableCopies int
}

// NewBook returns a Book with all copies available. The ISBN is normalized.
func NewBook(
	isbn string,
	title string,
	author string,
	publisher string,
	publicationYear int,
	category string,
	totalCopies int,
) (*Book, error) {

	normalized, err := NormalizeISBN(isbn)
	if err != nil {
		return nil, err
	}

	if totalCopies < 0 {
		return nil, ErrInvalidCopyCount
	}

	return &Book{
		ISBN:            normalized,
		Title:           title,
		Author:          author,
		Publisher:       publisher,
		PublicationYear: publicationYear,
		Category:        category,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
	}, nil
}

// HasAvailableCopy reports whether at least one copy can be lent.
func (b *Book) HasAvailableCopy() bool {
	return b.AvailableCopies > 0
}

// LendCopy takes one copy off the shelf. It returns ErrNoCopiesAvailable when none is left.
func (b *Book) LendCopy() error {
	if !b.HasAvailableCopy() {
		return ErrNoCopiesAvailable
	}

	b.AvailableCopies--

	return nil
}

// ReturnCopy puts one copy back on the shelf, never exceeding TotalCopies.
func (b *Book) ReturnCopy() {
	if b.AvailableCopies < b.TotalCopies {
		b.AvailableCopies++
	}
}
