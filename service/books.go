package service

import (
	"errors"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/internal/validator"
	"github.com/rayal-systems/bookapi/repository"
)

type books interface {
	ListBooks() ([]*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	GetBookByISBN(isbn string) (*data.Book, error)
	GetBookRating(bookID int64) (float64, error)
	CreateBook(authorIDs, categoryIDs []int64, body *dto.CreateBookRequestBody) (*data.Book, error)
	UpdateBook(bookID int64, authorIDs, categoryIDs []int64, body *dto.UpdateBookRequestBody) error
	DeleteBook(bookID int64) error
}

// ListBooks service retrieves a list of all books.
func (s *service) ListBooks() ([]*data.Book, error) {
	books, err := s.repo.GetAllBooks()
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook service retrieves a book record.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetBookByISBN service retrieves a book record by ISBN.
func (s *service) GetBookByISBN(isbn string) (*data.Book, error) {
	exists, err := s.repo.BookExistsByISBN(isbn)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	book, err := s.repo.GetBookByISBN(isbn)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetBookRating service retrieves the mean review rating of a book. A book
// without reviews has a rating of zero.
func (s *service) GetBookRating(bookID int64) (float64, error) {
	exists, err := s.repo.BookExists(bookID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrRecordNotFound
	}
	return s.repo.GetBookRating(bookID)
}

// CreateBook service creates a new book record together with its author and
// category associations.
func (s *service) CreateBook(authorIDs, categoryIDs []int64, body *dto.CreateBookRequestBody) (*data.Book, error) {
	if len(authorIDs) == 0 || len(categoryIDs) == 0 {
		return nil, ErrBadRequest
	}
	book := &data.Book{
		Title:         body.Title,
		ISBN:          body.ISBN,
		DatePublished: body.DatePublished,
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	duplicate, err := s.repo.IsDuplicateISBN(0, book.ISBN)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, ErrDuplicateRecord
	}
	if err := s.checkAuthorsExist(authorIDs); err != nil {
		return nil, err
	}
	if err := s.checkCategoriesExist(categoryIDs); err != nil {
		return nil, err
	}
	err = s.repo.CreateBook(authorIDs, categoryIDs, book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return book, nil
}

// UpdateBook service replaces a book record and its author and category
// associations.
func (s *service) UpdateBook(bookID int64, authorIDs, categoryIDs []int64, body *dto.UpdateBookRequestBody) error {
	if body.ID != 0 && body.ID != bookID {
		return ErrBadRequest
	}
	if len(authorIDs) == 0 || len(categoryIDs) == 0 {
		return ErrBadRequest
	}
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	book.Title = body.Title
	book.ISBN = body.ISBN
	book.DatePublished = body.DatePublished
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	duplicate, err := s.repo.IsDuplicateISBN(bookID, book.ISBN)
	if err != nil {
		return err
	}
	if duplicate {
		return ErrDuplicateRecord
	}
	if err := s.checkAuthorsExist(authorIDs); err != nil {
		return err
	}
	if err := s.checkCategoriesExist(categoryIDs); err != nil {
		return err
	}
	err = s.repo.UpdateBook(authorIDs, categoryIDs, book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return ErrEditConflict
		case errors.Is(err, repository.ErrDuplicateRecord):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// DeleteBook service deletes a book record and all of its reviews.
func (s *service) DeleteBook(bookID int64) error {
	err := s.repo.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
