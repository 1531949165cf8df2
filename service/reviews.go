package service

import (
	"errors"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/internal/validator"
	"github.com/rayal-systems/bookapi/repository"
)

type reviews interface {
	ListReviews() ([]*data.Review, error)
	GetReview(reviewID int64) (*data.Review, error)
	GetReviewsOfBook(bookID int64) ([]*data.Review, error)
	GetBookOfReview(reviewID int64) (*data.Book, error)
	CreateReview(body *dto.CreateReviewRequestBody) (*data.Review, error)
	UpdateReview(reviewID int64, body *dto.UpdateReviewRequestBody) error
	DeleteReview(reviewID int64) error
}

// ListReviews service retrieves a list of all reviews.
func (s *service) ListReviews() ([]*data.Review, error) {
	reviews, err := s.repo.GetReviews()
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetReview service retrieves a review record.
func (s *service) GetReview(reviewID int64) (*data.Review, error) {
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return review, nil
}

// GetReviewsOfBook service retrieves the reviews left on a book.
func (s *service) GetReviewsOfBook(bookID int64) ([]*data.Review, error) {
	exists, err := s.repo.BookExists(bookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetReviewsOfBook(bookID)
}

// GetBookOfReview service retrieves the book a review refers to.
func (s *service) GetBookOfReview(reviewID int64) (*data.Book, error) {
	exists, err := s.repo.ReviewExists(reviewID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	book, err := s.repo.GetBookOfReview(reviewID)
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

// CreateReview service creates a new review record. Only the ids of the
// referenced book and reviewer are taken from the request, and both must
// resolve to stored records.
func (s *service) CreateReview(body *dto.CreateReviewRequestBody) (*data.Review, error) {
	review := &data.Review{
		Headline:   body.Headline,
		ReviewText: body.ReviewText,
		Rating:     body.Rating,
		BookID:     body.BookID,
		ReviewerID: body.ReviewerID,
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	exists, err := s.repo.BookExists(review.BookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	exists, err = s.repo.ReviewerExists(review.ReviewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	err = s.repo.CreateReview(review)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview service replaces a review record.
func (s *service) UpdateReview(reviewID int64, body *dto.UpdateReviewRequestBody) error {
	if body.ID != 0 && body.ID != reviewID {
		return ErrBadRequest
	}
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	review.Headline = body.Headline
	review.ReviewText = body.ReviewText
	review.Rating = body.Rating
	review.BookID = body.BookID
	review.ReviewerID = body.ReviewerID
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	exists, err := s.repo.BookExists(review.BookID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecordNotFound
	}
	exists, err = s.repo.ReviewerExists(review.ReviewerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecordNotFound
	}
	err = s.repo.UpdateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteReview service deletes a review record.
func (s *service) DeleteReview(reviewID int64) error {
	err := s.repo.DeleteReview(reviewID)
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
