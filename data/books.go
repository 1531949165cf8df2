package data

import (
	"time"

	"github.com/rayal-systems/bookapi/internal/validator"
)

// Book defines a book record. Authors and categories are related to a book
// through join rows and are never embedded here, so encoding a book to JSON
// cannot run into reference cycles.
type Book struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	DatePublished *time.Time `json:"date_published,omitempty"`
	CreatedAt     time.Time  `json:"-"`
	Version       int32      `json:"-"`
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) <= 500, "title", "must not be more than 500 bytes long")
	v.Check(book.ISBN != "", "isbn", "must be provided")
	v.Check(len(book.ISBN) <= 20, "isbn", "must not be more than 20 characters")
}
