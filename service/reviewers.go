package service

import (
	"errors"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/internal/validator"
	"github.com/rayal-systems/bookapi/repository"
)

type reviewers interface {
	ListReviewers() ([]*data.Reviewer, error)
	GetReviewer(reviewerID int64) (*data.Reviewer, error)
	GetReviewsByReviewer(reviewerID int64) ([]*data.Review, error)
	GetReviewerOfReview(reviewID int64) (*data.Reviewer, error)
	CreateReviewer(body *dto.CreateReviewerRequestBody) (*data.Reviewer, error)
	UpdateReviewer(reviewerID int64, body *dto.UpdateReviewerRequestBody) error
	DeleteReviewer(reviewerID int64) error
}

// ListReviewers service retrieves a list of all reviewers.
func (s *service) ListReviewers() ([]*data.Reviewer, error) {
	reviewers, err := s.repo.GetReviewers()
	if err != nil {
		return nil, err
	}
	return reviewers, nil
}

// GetReviewer service retrieves a reviewer record.
func (s *service) GetReviewer(reviewerID int64) (*data.Reviewer, error) {
	reviewer, err := s.repo.GetReviewer(reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return reviewer, nil
}

// GetReviewsByReviewer service retrieves the reviews a reviewer has
// written.
func (s *service) GetReviewsByReviewer(reviewerID int64) ([]*data.Review, error) {
	exists, err := s.repo.ReviewerExists(reviewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetReviewsByReviewer(reviewerID)
}

// GetReviewerOfReview service retrieves the reviewer that wrote a review.
func (s *service) GetReviewerOfReview(reviewID int64) (*data.Reviewer, error) {
	exists, err := s.repo.ReviewExists(reviewID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	reviewer, err := s.repo.GetReviewerOfReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return reviewer, nil
}

// CreateReviewer service creates a new reviewer record.
func (s *service) CreateReviewer(body *dto.CreateReviewerRequestBody) (*data.Reviewer, error) {
	reviewer := &data.Reviewer{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	v := validator.New()
	if data.ValidateReviewer(v, reviewer); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateReviewer(reviewer)
	if err != nil {
		return nil, err
	}
	return reviewer, nil
}

// UpdateReviewer service replaces a reviewer record.
func (s *service) UpdateReviewer(reviewerID int64, body *dto.UpdateReviewerRequestBody) error {
	if body.ID != 0 && body.ID != reviewerID {
		return ErrBadRequest
	}
	reviewer, err := s.repo.GetReviewer(reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	reviewer.FirstName = body.FirstName
	reviewer.LastName = body.LastName
	v := validator.New()
	if data.ValidateReviewer(v, reviewer); !v.Valid() {
		return s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateReviewer(reviewer)
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

// DeleteReviewer service deletes a reviewer record together with every
// review the reviewer has written.
func (s *service) DeleteReviewer(reviewerID int64) error {
	err := s.repo.DeleteReviewer(reviewerID)
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
