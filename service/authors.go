package service

import (
	"errors"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/internal/validator"
	"github.com/rayal-systems/bookapi/repository"
)

type authors interface {
	ListAuthors() ([]*data.Author, error)
	GetAuthor(authorID int64) (*data.Author, error)
	GetBooksByAuthor(authorID int64) ([]*data.Book, error)
	GetAuthorsOfBook(bookID int64) ([]*data.Author, error)
	CreateAuthor(body *dto.CreateAuthorRequestBody) (*data.Author, error)
	UpdateAuthor(authorID int64, body *dto.UpdateAuthorRequestBody) (*data.Author, error)
	DeleteAuthor(authorID int64) error
}

// ListAuthors service retrieves a list of all authors.
func (s *service) ListAuthors() ([]*data.Author, error) {
	authors, err := s.repo.GetAuthors()
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// GetAuthor service retrieves an author record.
func (s *service) GetAuthor(authorID int64) (*data.Author, error) {
	author, err := s.repo.GetAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return author, nil
}

// GetBooksByAuthor service retrieves the books written by an author.
func (s *service) GetBooksByAuthor(authorID int64) ([]*data.Book, error) {
	exists, err := s.repo.AuthorExists(authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetBooksByAuthor(authorID)
}

// GetAuthorsOfBook service retrieves the authors of a book.
func (s *service) GetAuthorsOfBook(bookID int64) ([]*data.Author, error) {
	exists, err := s.repo.BookExists(bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetAuthorsOfBook(bookID)
}

// CreateAuthor service creates a new author record. The referenced country
// must already exist.
func (s *service) CreateAuthor(body *dto.CreateAuthorRequestBody) (*data.Author, error) {
	author := &data.Author{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		CountryID: body.CountryID,
	}
	v := validator.New()
	if data.ValidateAuthor(v, author); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	exists, err := s.repo.CountryExists(author.CountryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	err = s.repo.CreateAuthor(author)
	if err != nil {
		return nil, err
	}
	return author, nil
}

// UpdateAuthor service replaces an author record and returns the updated
// record.
func (s *service) UpdateAuthor(authorID int64, body *dto.UpdateAuthorRequestBody) (*data.Author, error) {
	if body.ID != 0 && body.ID != authorID {
		return nil, ErrBadRequest
	}
	author, err := s.repo.GetAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	author.FirstName = body.FirstName
	author.LastName = body.LastName
	author.CountryID = body.CountryID
	v := validator.New()
	if data.ValidateAuthor(v, author); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	exists, err := s.repo.CountryExists(author.CountryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	err = s.repo.UpdateAuthor(author)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return author, nil
}

// DeleteAuthor service deletes an author record. An author still credited
// on at least one book cannot be deleted.
func (s *service) DeleteAuthor(authorID int64) error {
	exists, err := s.repo.AuthorExists(authorID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecordNotFound
	}
	books, err := s.repo.GetBooksByAuthor(authorID)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return ErrRecordReferenced
	}
	err = s.repo.DeleteAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrRecordReferenced):
			return ErrRecordReferenced
		default:
			return err
		}
	}
	return nil
}
