package data

import (
	"time"

	"github.com/rayal-systems/bookapi/internal/validator"
)

// Review defines a book review. The book and reviewer are referenced by id
// only; the authoritative records are always resolved through the store
// before a review is persisted.
type Review struct {
	ID         int64     `json:"id"`
	Headline   string    `json:"headline"`
	Rating     int32     `json:"rating"`
	ReviewText string    `json:"review_text"`
	BookID     int64     `json:"-"`
	ReviewerID int64     `json:"-"`
	CreatedAt  time.Time `json:"-"`
	Version    int32     `json:"-"`
}

func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.Headline != "", "headline", "must be provided")
	v.Check(len(review.Headline) <= 200, "headline", "must not be more than 200 bytes long")
	v.Check(review.ReviewText != "", "review_text", "must be provided")
	v.Check(len(review.ReviewText) <= 2000, "review_text", "must not be more than 2000 bytes long")
	v.Check(review.Rating >= 1, "rating", "must be at least one")
	v.Check(review.Rating <= 5, "rating", "must not be greater than five")
}
