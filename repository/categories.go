package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rayal-systems/bookapi/data"
)

type categories interface {
	CategoryExists(categoryID int64) (bool, error)
	GetCategory(categoryID int64) (*data.Category, error)
	GetCategories() ([]*data.Category, error)
	GetCategoriesOfBook(bookID int64) ([]*data.Category, error)
	GetBooksForCategory(categoryID int64) ([]*data.Book, error)
	IsDuplicateCategoryName(categoryID int64, name string) (bool, error)
	CreateCategory(category *data.Category) error
	UpdateCategory(category *data.Category) error
	DeleteCategory(categoryID int64) error
}

// CategoryExists checks whether a category record with the given id exists.
func (r *repository) CategoryExists(categoryID int64) (bool, error) {
	if categoryID < 1 {
		return false, nil
	}
	query := `
		SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&exists)
	return exists, err
}

// GetCategory retrieves a category record by its id.
func (r *repository) GetCategory(categoryID int64) (*data.Category, error) {
	if categoryID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1`
	var category data.Category
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(
		&category.ID,
		&category.Name,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &category, nil
}

// GetCategories retrieves all category records ordered by name.
func (r *repository) GetCategories() ([]*data.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

// GetCategoriesOfBook retrieves all category records joined to a book.
func (r *repository) GetCategoriesOfBook(bookID int64) ([]*data.Category, error) {
	query := `
		SELECT categories.id, categories.name
		FROM categories
		INNER JOIN books_categories ON books_categories.category_id = categories.id
		WHERE books_categories.book_id = $1
		ORDER BY categories.name ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

// GetBooksForCategory retrieves all book records joined to a category.
func (r *repository) GetBooksForCategory(categoryID int64) ([]*data.Book, error) {
	query := `
		SELECT books.id, books.created_at, books.title, books.isbn, books.date_published, books.version
		FROM books
		INNER JOIN books_categories ON books_categories.book_id = books.id
		WHERE books_categories.category_id = $1
		ORDER BY books.title ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, categoryID)
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

// IsDuplicateCategoryName checks whether a category record other than the
// one with the given id carries the same name. The comparison ignores case
// and surrounding whitespace.
func (r *repository) IsDuplicateCategoryName(categoryID int64, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE lower(btrim(name)) = lower(btrim($1)) AND id <> $2
		)`
	args := []interface{}{name, categoryID}
	var duplicate bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&duplicate)
	return duplicate, err
}

// CreateCategory creates a new category record.
func (r *repository) CreateCategory(category *data.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		switch {
		case uniqueViolation(err, "categories_name_key"):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// UpdateCategory updates a category record.
func (r *repository) UpdateCategory(category *data.Category) error {
	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2`
	args := []interface{}{category.Name, category.ID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case uniqueViolation(err, "categories_name_key"):
			return ErrDuplicateRecord
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

// DeleteCategory deletes a category record. The store's RESTRICT constraint
// is a backstop for the service-level guard against deleting a referenced
// category.
func (r *repository) DeleteCategory(categoryID int64) error {
	if categoryID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM categories
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, categoryID)
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

// scanCategories collects category records from a result set.
func scanCategories(rows *sql.Rows) ([]*data.Category, error) {
	categories := []*data.Category{}
	for rows.Next() {
		var category data.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
