package service

import (
	"errors"
	"testing"

	"github.com/rayal-systems/bookapi/data/dto"
)

func TestCreateAuthor(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	author, err := s.CreateAuthor(&dto.CreateAuthorRequestBody{FirstName: "Haruki", LastName: "Murakami", CountryID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if author.ID == 0 {
		t.Error("expected the created author to be assigned an id")
	}
}

func TestCreateAuthorUnknownCountry(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	_, err := s.CreateAuthor(&dto.CreateAuthorRequestBody{FirstName: "Haruki", LastName: "Murakami", CountryID: 99})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for an unknown country; got %v", err)
	}
	if len(repo.authors) != 2 {
		t.Error("expected no author to be persisted on an unresolved country")
	}
}

func TestCreateAuthorValidation(t *testing.T) {
	s := newTestService(newMockRepository())
	_, err := s.CreateAuthor(&dto.CreateAuthorRequestBody{FirstName: "", LastName: "Murakami", CountryID: 1})
	if !errors.Is(err, ErrFailedValidation) {
		t.Errorf("expected ErrFailedValidation for an empty first name; got %v", err)
	}
}

func TestUpdateAuthorReturnsUpdatedRecord(t *testing.T) {
	s := newTestService(newMockRepository())
	author, err := s.UpdateAuthor(1, &dto.UpdateAuthorRequestBody{ID: 1, FirstName: "Eric", LastName: "Blair", CountryID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if author.FirstName != "Eric" || author.LastName != "Blair" {
		t.Errorf("expected the updated record back; got %s %s", author.FirstName, author.LastName)
	}
}

func TestDeleteAuthorWithBooks(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	// Author 1 is credited on the fixture book.
	err := s.DeleteAuthor(1)
	if !errors.Is(err, ErrRecordReferenced) {
		t.Errorf("expected ErrRecordReferenced while the author still has books; got %v", err)
	}
	if err := s.DeleteBook(1); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteAuthor(1); err != nil {
		t.Errorf("expected the author to be deletable once bookless; got %v", err)
	}
}

func TestGetBooksByAuthorUnknownAuthor(t *testing.T) {
	s := newTestService(newMockRepository())
	_, err := s.GetBooksByAuthor(42)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound; got %v", err)
	}
}
