package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rayal-systems/bookapi/data"
)

type reviewers interface {
	ReviewerExists(reviewerID int64) (bool, error)
	GetReviewer(reviewerID int64) (*data.Reviewer, error)
	GetReviewers() ([]*data.Reviewer, error)
	GetReviewsByReviewer(reviewerID int64) ([]*data.Review, error)
	GetReviewerOfReview(reviewID int64) (*data.Reviewer, error)
	CreateReviewer(reviewer *data.Reviewer) error
	UpdateReviewer(reviewer *data.Reviewer) error
	DeleteReviewer(reviewerID int64) error
}

// ReviewerExists checks whether a reviewer record with the given id exists.
func (r *repository) ReviewerExists(reviewerID int64) (bool, error) {
	if reviewerID < 1 {
		return false, nil
	}
	query := `
		SELECT EXISTS (SELECT 1 FROM reviewers WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewerID).Scan(&exists)
	return exists, err
}

// GetReviewer retrieves a reviewer record by its id.
func (r *repository) GetReviewer(reviewerID int64) (*data.Reviewer, error) {
	if reviewerID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, first_name, last_name
		FROM reviewers
		WHERE id = $1`
	var reviewer data.Reviewer
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewerID).Scan(
		&reviewer.ID,
		&reviewer.FirstName,
		&reviewer.LastName,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &reviewer, nil
}

// GetReviewers retrieves all reviewer records.
func (r *repository) GetReviewers() ([]*data.Reviewer, error) {
	query := `
		SELECT id, first_name, last_name
		FROM reviewers
		ORDER BY last_name ASC, first_name ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reviewers := []*data.Reviewer{}
	for rows.Next() {
		var reviewer data.Reviewer
		err := rows.Scan(
			&reviewer.ID,
			&reviewer.FirstName,
			&reviewer.LastName,
		)
		if err != nil {
			return nil, err
		}
		reviewers = append(reviewers, &reviewer)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reviewers, nil
}

// GetReviewsByReviewer retrieves all review records authored by a reviewer.
func (r *repository) GetReviewsByReviewer(reviewerID int64) ([]*data.Review, error) {
	query := `
		SELECT id, headline, review_text, rating, book_id, reviewer_id, created_at, version
		FROM reviews
		WHERE reviewer_id = $1
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, reviewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// GetReviewerOfReview retrieves the reviewer record that authored a review.
func (r *repository) GetReviewerOfReview(reviewID int64) (*data.Reviewer, error) {
	if reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT reviewers.id, reviewers.first_name, reviewers.last_name
		FROM reviewers
		INNER JOIN reviews ON reviews.reviewer_id = reviewers.id
		WHERE reviews.id = $1`
	var reviewer data.Reviewer
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
		&reviewer.ID,
		&reviewer.FirstName,
		&reviewer.LastName,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &reviewer, nil
}

// CreateReviewer creates a new reviewer record.
func (r *repository) CreateReviewer(reviewer *data.Reviewer) error {
	query := `
		INSERT INTO reviewers (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id`
	args := []interface{}{reviewer.FirstName, reviewer.LastName}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&reviewer.ID)
}

// UpdateReviewer updates a reviewer record.
func (r *repository) UpdateReviewer(reviewer *data.Reviewer) error {
	query := `
		UPDATE reviewers
		SET first_name = $1, last_name = $2
		WHERE id = $3`
	args := []interface{}{reviewer.FirstName, reviewer.LastName, reviewer.ID}
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

// DeleteReviewer deletes a reviewer record and all reviews authored by it,
// reviews first, as a single transaction.
func (r *repository) DeleteReviewer(reviewerID int64) error {
	if reviewerID < 1 {
		return ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `DELETE FROM reviews WHERE reviewer_id = $1`, reviewerID)
	if err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM reviewers WHERE id = $1`, reviewerID)
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
