package service

import (
	"errors"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/internal/validator"
	"github.com/rayal-systems/bookapi/repository"
)

type categories interface {
	ListCategories() ([]*data.Category, error)
	GetCategory(categoryID int64) (*data.Category, error)
	GetCategoriesOfBook(bookID int64) ([]*data.Category, error)
	GetBooksForCategory(categoryID int64) ([]*data.Book, error)
	CreateCategory(body *dto.CreateCategoryRequestBody) (*data.Category, error)
	UpdateCategory(categoryID int64, body *dto.UpdateCategoryRequestBody) error
	DeleteCategory(categoryID int64) error
}

// ListCategories service retrieves a list of all categories.
func (s *service) ListCategories() ([]*data.Category, error) {
	categories, err := s.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory service retrieves a category record.
func (s *service) GetCategory(categoryID int64) (*data.Category, error) {
	category, err := s.repo.GetCategory(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return category, nil
}

// GetCategoriesOfBook service retrieves the categories a book is filed
// under.
func (s *service) GetCategoriesOfBook(bookID int64) ([]*data.Category, error) {
	exists, err := s.repo.BookExists(bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetCategoriesOfBook(bookID)
}

// GetBooksForCategory service retrieves the books filed under a category.
func (s *service) GetBooksForCategory(categoryID int64) ([]*data.Book, error) {
	exists, err := s.repo.CategoryExists(categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetBooksForCategory(categoryID)
}

// CreateCategory service creates a new category record. Names are unique
// ignoring case and surrounding whitespace.
func (s *service) CreateCategory(body *dto.CreateCategoryRequestBody) (*data.Category, error) {
	category := &data.Category{
		Name: body.Name,
	}
	v := validator.New()
	if data.ValidateCategory(v, category); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	duplicate, err := s.repo.IsDuplicateCategoryName(0, category.Name)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, ErrDuplicateRecord
	}
	err = s.repo.CreateCategory(category)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return category, nil
}

// UpdateCategory service replaces a category record. The duplicate name
// check excludes the record's own id.
func (s *service) UpdateCategory(categoryID int64, body *dto.UpdateCategoryRequestBody) error {
	if body.ID != 0 && body.ID != categoryID {
		return ErrBadRequest
	}
	category, err := s.repo.GetCategory(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	category.Name = body.Name
	v := validator.New()
	if data.ValidateCategory(v, category); !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	duplicate, err := s.repo.IsDuplicateCategoryName(categoryID, category.Name)
	if err != nil {
		return err
	}
	if duplicate {
		return ErrDuplicateRecord
	}
	err = s.repo.UpdateCategory(category)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		case errors.Is(err, repository.ErrDuplicateRecord):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// DeleteCategory service deletes a category record. A category still
// holding at least one book cannot be deleted.
func (s *service) DeleteCategory(categoryID int64) error {
	exists, err := s.repo.CategoryExists(categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecordNotFound
	}
	books, err := s.repo.GetBooksForCategory(categoryID)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return ErrRecordReferenced
	}
	err = s.repo.DeleteCategory(categoryID)
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
