package service

import (
	"errors"
	"testing"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
)

func TestCreateBook(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	body := &dto.CreateBookRequestBody{Title: "Things Fall Apart", ISBN: "9780385474542"}
	book, err := s.CreateBook([]int64{2}, []int64{1, 2}, body)
	if err != nil {
		t.Fatal(err)
	}
	if book.ID == 0 {
		t.Error("expected the created book to be assigned an id")
	}
	if got := len(repo.bookAuthors[book.ID]); got != 1 {
		t.Errorf("expected 1 author association; got %d", got)
	}
	if got := len(repo.bookCategories[book.ID]); got != 2 {
		t.Errorf("expected 2 category associations; got %d", got)
	}
}

func TestCreateBookThenGetByISBN(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	body := &dto.CreateBookRequestBody{Title: "Kafka on the Shore", ISBN: "9781400079278"}
	created, err := s.CreateBook([]int64{1}, []int64{2}, body)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.GetBookByISBN("9781400079278")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != created.ID {
		t.Errorf("expected the ISBN lookup to return the created book %d; got %d", created.ID, got.ID)
	}
	if got.Title != "Kafka on the Shore" {
		t.Errorf("expected the created book's title; got %q", got.Title)
	}
	_, err = s.GetBookByISBN("9999999999999")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for an unknown ISBN; got %v", err)
	}
}

func TestCreateBookRequiresAuthorsAndCategories(t *testing.T) {
	s := newTestService(newMockRepository())
	body := &dto.CreateBookRequestBody{Title: "Things Fall Apart", ISBN: "9780385474542"}
	_, err := s.CreateBook(nil, []int64{1}, body)
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest with no author ids; got %v", err)
	}
	_, err = s.CreateBook([]int64{1}, nil, body)
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest with no category ids; got %v", err)
	}
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	// The fixture book holds this ISBN; padding and case must not evade the
	// check.
	body := &dto.CreateBookRequestBody{Title: "Another Edition", ISBN: "  9780451524935  "}
	_, err := s.CreateBook([]int64{1}, []int64{1}, body)
	if !errors.Is(err, ErrDuplicateRecord) {
		t.Errorf("expected ErrDuplicateRecord; got %v", err)
	}
	if len(repo.books) != 1 {
		t.Error("expected no book to be persisted on a duplicate ISBN")
	}
}

func TestCreateBookUnknownReferences(t *testing.T) {
	s := newTestService(newMockRepository())
	body := &dto.CreateBookRequestBody{Title: "Things Fall Apart", ISBN: "9780385474542"}
	_, err := s.CreateBook([]int64{99}, []int64{1}, body)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for an unknown author id; got %v", err)
	}
	_, err = s.CreateBook([]int64{1}, []int64{99}, body)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for an unknown category id; got %v", err)
	}
}

func TestCreateBookValidation(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	body := &dto.CreateBookRequestBody{Title: "", ISBN: "9780385474542"}
	_, err := s.CreateBook([]int64{1}, []int64{1}, body)
	if !errors.Is(err, ErrFailedValidation) {
		t.Errorf("expected ErrFailedValidation for an empty title; got %v", err)
	}
	if len(repo.books) != 1 {
		t.Error("expected no book to be persisted on a validation failure")
	}
}

func TestUpdateBookKeepsOwnISBN(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	body := &dto.UpdateBookRequestBody{ID: 1, Title: "Nineteen Eighty-Four (Anniversary)", ISBN: "9780451524935"}
	err := s.UpdateBook(1, []int64{1}, []int64{1}, body)
	if err != nil {
		t.Fatalf("expected a book to keep its own ISBN on update; got %v", err)
	}
	if repo.books[1].Title != "Nineteen Eighty-Four (Anniversary)" {
		t.Errorf("expected the title to be updated; got %q", repo.books[1].Title)
	}
}

func TestUpdateBookIDMismatch(t *testing.T) {
	s := newTestService(newMockRepository())
	body := &dto.UpdateBookRequestBody{ID: 2, Title: "Nineteen Eighty-Four", ISBN: "9780451524935"}
	err := s.UpdateBook(1, []int64{1}, []int64{1}, body)
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest when the body id disagrees with the path id; got %v", err)
	}
}

func TestUpdateBookNotFound(t *testing.T) {
	s := newTestService(newMockRepository())
	body := &dto.UpdateBookRequestBody{Title: "Ghost", ISBN: "0000000000"}
	err := s.UpdateBook(42, []int64{1}, []int64{1}, body)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound; got %v", err)
	}
}

func TestDeleteBookCascadesReviews(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	if len(repo.reviews) == 0 {
		t.Fatal("fixture should hold at least one review")
	}
	err := s.DeleteBook(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(repo.reviews) != 0 {
		t.Errorf("expected the book's reviews to be deleted with it; %d left", len(repo.reviews))
	}
}

func TestGetBookRating(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	rating, err := s.GetBookRating(1)
	if err != nil {
		t.Fatal(err)
	}
	if rating != 4 {
		t.Errorf("expected rating 4 from a single 4-star review; got %v", rating)
	}
	repo.reviews[2] = &data.Review{ID: 2, Headline: "Mixed", ReviewText: "Uneven.", Rating: 2, BookID: 1, ReviewerID: 1, Version: 1}
	rating, err = s.GetBookRating(1)
	if err != nil {
		t.Fatal(err)
	}
	if rating != 3 {
		t.Errorf("expected mean rating 3; got %v", rating)
	}
}

func TestGetBookRatingWithoutReviews(t *testing.T) {
	repo := newMockRepository()
	s := newTestService(repo)
	delete(repo.reviews, 1)
	rating, err := s.GetBookRating(1)
	if err != nil {
		t.Fatal(err)
	}
	if rating != 0 {
		t.Errorf("expected rating 0 for a book without reviews; got %v", rating)
	}
}

func TestGetBookRatingUnknownBook(t *testing.T) {
	s := newTestService(newMockRepository())
	_, err := s.GetBookRating(42)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound; got %v", err)
	}
}
