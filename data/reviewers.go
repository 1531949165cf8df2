package data

import "github.com/rayal-systems/bookapi/internal/validator"

// Reviewer defines a reviewer record.
type Reviewer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ValidateReviewer(v *validator.Validator, reviewer *Reviewer) {
	v.Check(reviewer.FirstName != "", "first_name", "must be provided")
	v.Check(len(reviewer.FirstName) <= 100, "first_name", "must not be more than 100 bytes long")
	v.Check(reviewer.LastName != "", "last_name", "must be provided")
	v.Check(len(reviewer.LastName) <= 100, "last_name", "must not be more than 100 bytes long")
}
