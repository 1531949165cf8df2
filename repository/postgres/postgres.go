package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/rayal-systems/bookapi/config"
)

// OpenDBConn creates a PostgreSQL database connection pool.
func OpenDBConn(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	duration, err := time.ParseDuration(cfg.Database.MaxIdleTime)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(duration)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = db.PingContext(ctx)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the database schema if it doesn't already exist. Join
// tables cascade on book deletion; authors, categories, reviewers and
// countries are protected by RESTRICT so a delete that would orphan rows
// fails at the store as well as in the service guards.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS countries (
			id bigserial PRIMARY KEY,
			name varchar(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS authors (
			id bigserial PRIMARY KEY,
			first_name varchar(100) NOT NULL,
			last_name varchar(100) NOT NULL,
			country_id bigint NOT NULL REFERENCES countries ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id bigserial PRIMARY KEY,
			name varchar(50) NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS categories_name_key ON categories (lower(btrim(name)))`,
		`CREATE TABLE IF NOT EXISTS books (
			id bigserial PRIMARY KEY,
			created_at timestamp(0) with time zone NOT NULL DEFAULT now(),
			title varchar(500) NOT NULL,
			isbn varchar(20) NOT NULL,
			date_published date,
			version integer NOT NULL DEFAULT 1
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS books_isbn_key ON books (lower(btrim(isbn)))`,
		`CREATE TABLE IF NOT EXISTS books_authors (
			book_id bigint NOT NULL REFERENCES books ON DELETE CASCADE,
			author_id bigint NOT NULL REFERENCES authors ON DELETE RESTRICT,
			PRIMARY KEY (book_id, author_id)
		)`,
		`CREATE TABLE IF NOT EXISTS books_categories (
			book_id bigint NOT NULL REFERENCES books ON DELETE CASCADE,
			category_id bigint NOT NULL REFERENCES categories ON DELETE RESTRICT,
			PRIMARY KEY (book_id, category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS reviewers (
			id bigserial PRIMARY KEY,
			first_name varchar(100) NOT NULL,
			last_name varchar(100) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id bigserial PRIMARY KEY,
			headline varchar(200) NOT NULL,
			review_text text NOT NULL,
			rating integer NOT NULL,
			book_id bigint NOT NULL REFERENCES books ON DELETE RESTRICT,
			reviewer_id bigint NOT NULL REFERENCES reviewers ON DELETE RESTRICT,
			created_at timestamp(0) with time zone NOT NULL DEFAULT now(),
			version integer NOT NULL DEFAULT 1
		)`,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, statement := range statements {
		_, err := db.ExecContext(ctx, statement)
		if err != nil {
			return err
		}
	}
	return nil
}
