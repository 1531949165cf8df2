package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rayal-systems/bookapi/data"
)

type authors interface {
	AuthorExists(authorID int64) (bool, error)
	GetAuthor(authorID int64) (*data.Author, error)
	GetAuthors() ([]*data.Author, error)
	GetBooksByAuthor(authorID int64) ([]*data.Book, error)
	GetAuthorsOfBook(bookID int64) ([]*data.Author, error)
	CreateAuthor(author *data.Author) error
	UpdateAuthor(author *data.Author) error
	DeleteAuthor(authorID int64) error
}

// AuthorExists checks whether an author record with the given id exists.
func (r *repository) AuthorExists(authorID int64) (bool, error) {
	if authorID < 1 {
		return false, nil
	}
	query := `
		SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(&exists)
	return exists, err
}

// GetAuthor retrieves an author record by its id.
func (r *repository) GetAuthor(authorID int64) (*data.Author, error) {
	if authorID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, first_name, last_name, country_id
		FROM authors
		WHERE id = $1`
	var author data.Author
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&author.ID,
		&author.FirstName,
		&author.LastName,
		&author.CountryID,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &author, nil
}

// GetAuthors retrieves all author records.
func (r *repository) GetAuthors() ([]*data.Author, error) {
	query := `
		SELECT id, first_name, last_name, country_id
		FROM authors
		ORDER BY last_name ASC, first_name ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuthors(rows)
}

// GetBooksByAuthor retrieves all book records joined to an author.
func (r *repository) GetBooksByAuthor(authorID int64) ([]*data.Book, error) {
	query := `
		SELECT books.id, books.created_at, books.title, books.isbn, books.date_published, books.version
		FROM books
		INNER JOIN books_authors ON books_authors.book_id = books.id
		WHERE books_authors.author_id = $1
		ORDER BY books.title ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&book.ID,
			&book.CreatedAt,
			&book.Title,
			&book.ISBN,
			&book.DatePublished,
			&book.Version,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetAuthorsOfBook retrieves all author records joined to a book.
func (r *repository) GetAuthorsOfBook(bookID int64) ([]*data.Author, error) {
	query := `
		SELECT authors.id, authors.first_name, authors.last_name, authors.country_id
		FROM authors
		INNER JOIN books_authors ON books_authors.author_id = authors.id
		WHERE books_authors.book_id = $1
		ORDER BY authors.id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuthors(rows)
}

// CreateAuthor creates a new author record.
func (r *repository) CreateAuthor(author *data.Author) error {
	query := `
		INSERT INTO authors (first_name, last_name, country_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	args := []interface{}{author.FirstName, author.LastName, author.CountryID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&author.ID)
}

// UpdateAuthor updates an author record.
func (r *repository) UpdateAuthor(author *data.Author) error {
	query := `
		UPDATE authors
		SET first_name = $1, last_name = $2, country_id = $3
		WHERE id = $4`
	args := []interface{}{author.FirstName, author.LastName, author.CountryID, author.ID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteAuthor deletes an author record. The store's RESTRICT constraint is
// a backstop for the service-level guard against deleting a referenced
// author.
func (r *repository) DeleteAuthor(authorID int64) error {
	if authorID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM authors
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, authorID)
	if err != nil {
		switch {
		case foreignKeyViolation(err):
			return ErrRecordReferenced
		default:
			return err
		}
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// scanAuthors collects author records from a result set.
func scanAuthors(rows *sql.Rows) ([]*data.Author, error) {
	authors := []*data.Author{}
	for rows.Next() {
		var author data.Author
		err := rows.Scan(
			&author.ID,
			&author.FirstName,
			&author.LastName,
			&author.CountryID,
		)
		if err != nil {
			return nil, err
		}
		authors = append(authors, &author)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return authors, nil
}
