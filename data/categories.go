package data

import "github.com/rayal-systems/bookapi/internal/validator"

// Category defines a category record.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ValidateCategory(v *validator.Validator, category *Category) {
	v.Check(category.Name != "", "name", "must be provided")
	v.Check(len(category.Name) <= 50, "name", "must not be more than 50 characters")
}
