package main

import (
	_ "embed"
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/libcirc/circulation-go/circulation/core"
)

//go:embed fixture.yaml
var defaultFixture []byte

// ErrReadingFixtureFailed is returned when a fixture file cannot be read or parsed.
var ErrReadingFixtureFailed = errors.New("reading fixture failed")

// Fixture is the library the simulation starts with.
type Fixture struct {
	Books   []BookFixture   `yaml:"books"`
	Patrons []PatronFixture `yaml:"patrons"`
}

// BookFixture is one catalog entry of a Fixture.
type BookFixture struct {
	ISBN            string `yaml:"isbn"`
	Title           string `yaml:"title"`
	Author          string `yaml:"author"`
	Publisher       string `yaml:"publisher"`
	PublicationYear int    `yaml:"publication_year"`
	Category        string `yaml:"category"`
	Copies          int    `yaml:"copies"`
}

// PatronFixture is one directory entry of a Fixture.
type PatronFixture struct {
	ID       string `yaml:"id"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Address  string `yaml:"address"`
}

// loadFixture parses the file at path, or the embedded fixture when path is empty.
func loadFixture(path string) (Fixture, error) {
	raw := defaultFixture

	if path != "" {
		var err error

		raw, err = os.ReadFile(path)
		if err != nil {
			return Fixture{}, errors.Join(ErrReadingFixtureFailed, err)
		}
	}

	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return Fixture{}, errors.Join(ErrReadingFixtureFailed, err)
	}

	return fixture, nil
}

func (b BookFixture) toBook() core.Book {
	return core.Book{
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Category:        b.Category,
		TotalCopies:     b.Copies,
	}
}

func (p PatronFixture) toPatron() core.Patron {
	return core.Patron{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
	}
}
