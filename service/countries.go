package service

import (
	"errors"

	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/repository"
)

type countries interface {
	ListCountries() ([]*data.Country, error)
	GetCountry(countryID int64) (*data.Country, error)
	GetCountryOfAuthor(authorID int64) (*data.Country, error)
	GetAuthorsFromCountry(countryID int64) ([]*data.Author, error)
}

// ListCountries service retrieves a list of all countries.
func (s *service) ListCountries() ([]*data.Country, error) {
	countries, err := s.repo.GetCountries()
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// GetCountry service retrieves a country record.
func (s *service) GetCountry(countryID int64) (*data.Country, error) {
	country, err := s.repo.GetCountry(countryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return country, nil
}

// GetCountryOfAuthor service retrieves the country an author belongs to.
func (s *service) GetCountryOfAuthor(authorID int64) (*data.Country, error) {
	exists, err := s.repo.AuthorExists(authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	country, err := s.repo.GetCountryOfAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return country, nil
}

// GetAuthorsFromCountry service retrieves the authors belonging to a
// country.
func (s *service) GetAuthorsFromCountry(countryID int64) ([]*data.Author, error) {
	exists, err := s.repo.CountryExists(countryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetAuthorsFromCountry(countryID)
}
