package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rayal-systems/bookapi/data"
)

type reviews interface {
	ReviewExists(reviewID int64) (bool, error)
	GetReview(reviewID int64) (*data.Review, error)
	GetReviews() ([]*data.Review, error)
	GetReviewsOfBook(bookID int64) ([]*data.Review, error)
	GetBookOfReview(reviewID int64) (*data.Book, error)
	CreateReview(review *data.Review) error
	UpdateReview(review *data.Review) error
	DeleteReview(reviewID int64) error
}

// ReviewExists checks whether a review record with the given id exists.
func (r *repository) ReviewExists(reviewID int64) (bool, error) {
	if reviewID < 1 {
		return false, nil
	}
	query := `
		SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(&exists)
	return exists, err
}

// GetReview retrieves a review record by its id.
func (r *repository) GetReview(reviewID int64) (*data.Review, error) {
	if reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, headline, review_text, rating, book_id, reviewer_id, created_at, version
		FROM reviews
		WHERE id = $1`
	var review data.Review
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
		&review.ID,
		&review.Headline,
		&review.ReviewText,
		&review.Rating,
		&review.BookID,
		&review.ReviewerID,
		&review.CreatedAt,
		&review.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// GetReviews retrieves all review records.
func (r *repository) GetReviews() ([]*data.Review, error) {
	query := `
		SELECT id, headline, review_text, rating, book_id, reviewer_id, created_at, version
		FROM reviews
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// GetReviewsOfBook retrieves all review records referencing a book.
func (r *repository) GetReviewsOfBook(bookID int64) ([]*data.Review, error) {
	query := `
		SELECT id, headline, review_text, rating, book_id, reviewer_id, created_at, version
		FROM reviews
		WHERE book_id = $1
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// GetBookOfReview retrieves the book record a review refers to.
func (r *repository) GetBookOfReview(reviewID int64) (*data.Book, error) {
	if reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT books.id, books.created_at, books.title, books.isbn, books.date_published, books.version
		FROM books
		INNER JOIN reviews ON reviews.book_id = books.id
		WHERE reviews.id = $1`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
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

// CreateReview creates a new review record.
func (r *repository) CreateReview(review *data.Review) error {
	query := `
		INSERT INTO reviews (headline, review_text, rating, book_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`
	args := []interface{}{review.Headline, review.ReviewText, review.Rating, review.BookID, review.ReviewerID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt, &review.Version)
}

// UpdateReview updates a review record, guarded by an optimistic concurrency
// check on the version column.
func (r *repository) UpdateReview(review *data.Review) error {
	query := `
		UPDATE reviews
		SET headline = $1, review_text = $2, rating = $3, book_id = $4, reviewer_id = $5, version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version`
	args := []interface{}{review.Headline, review.ReviewText, review.Rating, review.BookID, review.ReviewerID, review.ID, review.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteReview deletes a review record.
func (r *repository) DeleteReview(reviewID int64) error {
	if reviewID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM reviews
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, reviewID)
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

// scanReviews collects review records from a result set.
func scanReviews(rows *sql.Rows) ([]*data.Review, error) {
	reviews := []*data.Review{}
	for rows.Next() {
		var review data.Review
		err := rows.Scan(
			&review.ID,
			&review.Headline,
			&review.ReviewText,
			&review.Rating,
			&review.BookID,
			&review.ReviewerID,
			&review.CreatedAt,
			&review.Version,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
