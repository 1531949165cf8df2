package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rayal-systems/bookapi/data"
)

type countries interface {
	CountryExists(countryID int64) (bool, error)
	GetCountry(countryID int64) (*data.Country, error)
	GetCountries() ([]*data.Country, error)
	GetCountryOfAuthor(authorID int64) (*data.Country, error)
	GetAuthorsFromCountry(countryID int64) ([]*data.Author, error)
}

// CountryExists checks whether a country record with the given id exists.
func (r *repository) CountryExists(countryID int64) (bool, error) {
	if countryID < 1 {
		return false, nil
	}
	query := `
		SELECT EXISTS (SELECT 1 FROM countries WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, countryID).Scan(&exists)
	return exists, err
}

// GetCountry retrieves a country record by its id.
func (r *repository) GetCountry(countryID int64) (*data.Country, error) {
	if countryID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, name
		FROM countries
		WHERE id = $1`
	var country data.Country
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, countryID).Scan(
		&country.ID,
		&country.Name,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &country, nil
}

// GetCountries retrieves all country records ordered by name.
func (r *repository) GetCountries() ([]*data.Country, error) {
	query := `
		SELECT id, name
		FROM countries
		ORDER BY name ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	countries := []*data.Country{}
	for rows.Next() {
		var country data.Country
		err := rows.Scan(
			&country.ID,
			&country.Name,
		)
		if err != nil {
			return nil, err
		}
		countries = append(countries, &country)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return countries, nil
}

// GetCountryOfAuthor retrieves the country record an author belongs to.
func (r *repository) GetCountryOfAuthor(authorID int64) (*data.Country, error) {
	if authorID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT countries.id, countries.name
		FROM countries
		INNER JOIN authors ON authors.country_id = countries.id
		WHERE authors.id = $1`
	var country data.Country
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&country.ID,
		&country.Name,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &country, nil
}

// GetAuthorsFromCountry retrieves all author records belonging to a country.
func (r *repository) GetAuthorsFromCountry(countryID int64) ([]*data.Author, error) {
	query := `
		SELECT id, first_name, last_name, country_id
		FROM authors
		WHERE country_id = $1
		ORDER BY last_name ASC, first_name ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuthors(rows)
}
