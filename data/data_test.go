package data

import (
	"testing"

	"github.com/rayal-systems/bookapi/internal/validator"
)

func TestValidateBook(t *testing.T) {
	tests := []struct {
		name     string
		book     Book
		valid    bool
		badField string
	}{
		{
			name:  "valid book",
			book:  Book{Title: "Things Fall Apart", ISBN: "9780385474542"},
			valid: true,
		},
		{
			name:     "missing title",
			book:     Book{ISBN: "9780385474542"},
			badField: "title",
		},
		{
			name:     "missing isbn",
			book:     Book{Title: "Things Fall Apart"},
			badField: "isbn",
		},
		{
			name:     "isbn too long",
			book:     Book{Title: "Things Fall Apart", ISBN: "978038547454297803854745429"},
			badField: "isbn",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateBook(v, &tt.book)
			if v.Valid() != tt.valid {
				t.Fatalf("expected valid=%t; errors: %v", tt.valid, v.Errors)
			}
			if !tt.valid {
				if _, ok := v.Errors[tt.badField]; !ok {
					t.Errorf("expected an error on %q; errors: %v", tt.badField, v.Errors)
				}
			}
		})
	}
}

func TestValidateAuthor(t *testing.T) {
	v := validator.New()
	ValidateAuthor(v, &Author{FirstName: "Chinua", LastName: "Achebe", CountryID: 2})
	if !v.Valid() {
		t.Errorf("expected a complete author to be valid; errors: %v", v.Errors)
	}

	v = validator.New()
	ValidateAuthor(v, &Author{FirstName: "Chinua", LastName: "Achebe"})
	if _, ok := v.Errors["country_id"]; !ok {
		t.Errorf("expected an error on country_id; errors: %v", v.Errors)
	}
}

func TestValidateCategory(t *testing.T) {
	v := validator.New()
	ValidateCategory(v, &Category{Name: "Fiction"})
	if !v.Valid() {
		t.Errorf("expected a named category to be valid; errors: %v", v.Errors)
	}

	v = validator.New()
	ValidateCategory(v, &Category{})
	if _, ok := v.Errors["name"]; !ok {
		t.Errorf("expected an error on name; errors: %v", v.Errors)
	}
}

func TestValidateCountry(t *testing.T) {
	v := validator.New()
	ValidateCountry(v, &Country{Name: "Nigeria"})
	if !v.Valid() {
		t.Errorf("expected a named country to be valid; errors: %v", v.Errors)
	}

	v = validator.New()
	ValidateCountry(v, &Country{})
	if _, ok := v.Errors["name"]; !ok {
		t.Errorf("expected an error on name; errors: %v", v.Errors)
	}
}

func TestValidateReviewRatingBounds(t *testing.T) {
	for _, rating := range []int32{0, 6} {
		v := validator.New()
		ValidateReview(v, &Review{Headline: "A classic", Rating: rating, ReviewText: "Holds up on every reread."})
		if _, ok := v.Errors["rating"]; !ok {
			t.Errorf("expected rating %d to be rejected; errors: %v", rating, v.Errors)
		}
	}
	for _, rating := range []int32{1, 5} {
		v := validator.New()
		ValidateReview(v, &Review{Headline: "A classic", Rating: rating, ReviewText: "Holds up on every reread."})
		if !v.Valid() {
			t.Errorf("expected rating %d to be accepted; errors: %v", rating, v.Errors)
		}
	}
}
