package data

import "github.com/rayal-systems/bookapi/internal/validator"

// Author defines an author record. An author belongs to exactly one country,
// referenced by id only.
type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CountryID int64  `json:"-"`
}

func ValidateAuthor(v *validator.Validator, author *Author) {
	v.Check(author.FirstName != "", "first_name", "must be provided")
	v.Check(len(author.FirstName) <= 100, "first_name", "must not be more than 100 bytes long")
	v.Check(author.LastName != "", "last_name", "must be provided")
	v.Check(len(author.LastName) <= 100, "last_name", "must not be more than 100 bytes long")
	v.Check(author.CountryID > 0, "country_id", "must be a valid country id")
}
