package data

import "github.com/rayal-systems/bookapi/internal/validator"

// Country defines a country record.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ValidateCountry(v *validator.Validator, country *Country) {
	v.Check(country.Name != "", "name", "must be provided")
	v.Check(len(country.Name) <= 50, "name", "must not be more than 50 characters")
}
