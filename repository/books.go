package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rayal-systems/bookapi/data"
)

type books interface {
	BookExists(bookID int64) (bool, error)
	BookExistsByISBN(isbn string) (bool, error)
	GetBook(bookID int64) (*data.Book, error)
	GetBookByISBN(isbn string) (*data.Book, error)
	GetAllBooks() ([]*data.Book, error)
	GetBookRating(bookID int64) (float64, error)
	IsDuplicateISBN(bookID int64, isbn string) (bool, error)
	CreateBook(authorIDs, categoryIDs []int64, book *data.Book) error
	UpdateBook(authorIDs, categoryIDs []int64, book *data.Book) error
	DeleteBook(bookID int64) error
}

// uniqueViolation reports whether err is a Postgres unique constraint
// violation on the named constraint.
func uniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == constraint
	}
	return false
}

// foreignKeyViolation reports whether err is a Postgres foreign key
// constraint violation.
func foreignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "foreign_key_violation"
	}
	return false
}

// BookExists checks whether a book record with the given id exists.
func (r *repository) BookExists(bookID int64) (bool, error) {
	if bookID < 1 {
		return false, nil
	}
	query := `
		SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(&exists)
	return exists, err
}

// BookExistsByISBN checks whether a book record with the given ISBN exists.
func (r *repository) BookExistsByISBN(isbn string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, isbn).Scan(&exists)
	return exists, err
}

// GetBook retrieves a book record by its id.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, created_at, title, isbn, date_published, version
		FROM books
		WHERE id = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.Title,
		&book.ISBN,
		&book.DatePublished,
		&book.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetBookByISBN retrieves a book record by its ISBN.
func (r *repository) GetBookByISBN(isbn string) (*data.Book, error) {
	query := `
		SELECT id, created_at, title, isbn, date_published, version
		FROM books
		WHERE isbn = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, isbn).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.Title,
		&book.ISBN,
		&book.DatePublished,
		&book.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves all book records ordered by title.
func (r *repository) GetAllBooks() ([]*data.Book, error) {
	query := `
		SELECT id, created_at, title, isbn, date_published, version
		FROM books
		ORDER BY title ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
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

// GetBookRating retrieves the mean review rating of a book record.
// A book with no reviews has a rating of exactly zero.
func (r *repository) GetBookRating(bookID int64) (float64, error) {
	query := `
		SELECT coalesce(avg(rating), 0)
		FROM reviews
		WHERE book_id = $1`
	var rating float64
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(&rating)
	if err != nil {
		return 0, err
	}
	return rating, nil
}

// IsDuplicateISBN checks whether a book record other than the one with the
// given id carries the same ISBN. The comparison ignores case and
// surrounding whitespace.
func (r *repository) IsDuplicateISBN(bookID int64, isbn string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM books
			WHERE lower(btrim(isbn)) = lower(btrim($1)) AND id <> $2
		)`
	args := []interface{}{isbn, bookID}
	var duplicate bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&duplicate)
	return duplicate, err
}

// CreateBook creates a new book record together with one join row per
// author id and per category id, as a single transaction.
func (r *repository) CreateBook(authorIDs, categoryIDs []int64, book *data.Book) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		INSERT INTO books (title, isbn, date_published)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`
	args := []interface{}{book.Title, book.ISBN, book.DatePublished}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt, &book.Version)
	if err != nil {
		switch {
		case uniqueViolation(err, "books_isbn_key"):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	err = insertBookJoins(ctx, tx, book.ID, authorIDs, categoryIDs)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateBook replaces a book record and all of its author and category
// associations as a single transaction. The book row update is guarded by
// an optimistic concurrency check on the version column.
func (r *repository) UpdateBook(authorIDs, categoryIDs []int64, book *data.Book) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		UPDATE books
		SET title = $1, isbn = $2, date_published = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version`
	args := []interface{}{book.Title, book.ISBN, book.DatePublished, book.ID, book.Version}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&book.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		case uniqueViolation(err, "books_isbn_key"):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM books_authors WHERE book_id = $1`, book.ID)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM books_categories WHERE book_id = $1`, book.ID)
	if err != nil {
		return err
	}
	err = insertBookJoins(ctx, tx, book.ID, authorIDs, categoryIDs)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteBook deletes a book record and all reviews referencing it, reviews
// first, as a single transaction.
func (r *repository) DeleteBook(bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `DELETE FROM reviews WHERE book_id = $1`, bookID)
	if err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, bookID)
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
	return tx.Commit()
}

// insertBookJoins creates the join rows linking a book to its authors and
// categories inside an open transaction.
func insertBookJoins(ctx context.Context, tx *sql.Tx, bookID int64, authorIDs, categoryIDs []int64) error {
	for _, authorID := range authorIDs {
		_, err := tx.ExecContext(ctx, `INSERT INTO books_authors (book_id, author_id) VALUES ($1, $2)`, bookID, authorID)
		if err != nil {
			return err
		}
	}
	for _, categoryID := range categoryIDs {
		_, err := tx.ExecContext(ctx, `INSERT INTO books_categories (book_id, category_id) VALUES ($1, $2)`, bookID, categoryID)
		if err != nil {
			return err
		}
	}
	return nil
}
