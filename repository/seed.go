package repository

import (
	"context"
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yml
var seedData []byte

type seeder interface {
	Seed() error
}

type seedFixture struct {
	Countries []struct {
		ID   int64  `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"countries"`
	Authors []struct {
		ID        int64  `yaml:"id"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		CountryID int64  `yaml:"country_id"`
	} `yaml:"authors"`
	Categories []struct {
		ID   int64  `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
	Reviewers []struct {
		ID        int64  `yaml:"id"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
	} `yaml:"reviewers"`
	Books []struct {
		ID            int64   `yaml:"id"`
		Title         string  `yaml:"title"`
		ISBN          string  `yaml:"isbn"`
		DatePublished string  `yaml:"date_published"`
		AuthorIDs     []int64 `yaml:"author_ids"`
		CategoryIDs   []int64 `yaml:"category_ids"`
	} `yaml:"books"`
	Reviews []struct {
		Headline   string `yaml:"headline"`
		ReviewText string `yaml:"review_text"`
		Rating     int32  `yaml:"rating"`
		BookID     int64  `yaml:"book_id"`
		ReviewerID int64  `yaml:"reviewer_id"`
	} `yaml:"reviews"`
}

// Seed loads the embedded fixture into an empty store. A store that already
// holds books is left untouched.
func (r *repository) Seed() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var fixture seedFixture
	if err := yaml.Unmarshal(seedData, &fixture); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, country := range fixture.Countries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO countries (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING`, country.ID, country.Name)
		if err != nil {
			return err
		}
	}
	for _, author := range fixture.Authors {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO authors (id, first_name, last_name, country_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`, author.ID, author.FirstName, author.LastName, author.CountryID)
		if err != nil {
			return err
		}
	}
	for _, category := range fixture.Categories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING`, category.ID, category.Name)
		if err != nil {
			return err
		}
	}
	for _, reviewer := range fixture.Reviewers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO reviewers (id, first_name, last_name)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING`, reviewer.ID, reviewer.FirstName, reviewer.LastName)
		if err != nil {
			return err
		}
	}
	for _, book := range fixture.Books {
		var published *time.Time
		if book.DatePublished != "" {
			t, err := time.Parse("2006-01-02", book.DatePublished)
			if err != nil {
				return err
			}
			published = &t
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO books (id, title, isbn, date_published)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`, book.ID, book.Title, book.ISBN, published)
		if err != nil {
			return err
		}
		if err := insertBookJoins(ctx, tx, book.ID, book.AuthorIDs, book.CategoryIDs); err != nil {
			return err
		}
	}
	for _, review := range fixture.Reviews {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO reviews (headline, review_text, rating, book_id, reviewer_id)
			VALUES ($1, $2, $3, $4, $5)`, review.Headline, review.ReviewText, review.Rating, review.BookID, review.ReviewerID)
		if err != nil {
			return err
		}
	}

	// Fixture rows carry explicit ids, so the sequences must be advanced
	// past them before the first client insert.
	for _, stmt := range []string{
		`SELECT setval(pg_get_serial_sequence('countries', 'id'), (SELECT coalesce(max(id), 1) FROM countries))`,
		`SELECT setval(pg_get_serial_sequence('authors', 'id'), (SELECT coalesce(max(id), 1) FROM authors))`,
		`SELECT setval(pg_get_serial_sequence('categories', 'id'), (SELECT coalesce(max(id), 1) FROM categories))`,
		`SELECT setval(pg_get_serial_sequence('reviewers', 'id'), (SELECT coalesce(max(id), 1) FROM reviewers))`,
		`SELECT setval(pg_get_serial_sequence('books', 'id'), (SELECT coalesce(max(id), 1) FROM books))`,
		`SELECT setval(pg_get_serial_sequence('reviews', 'id'), (SELECT coalesce(max(id), 1) FROM reviews))`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
