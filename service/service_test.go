package service

import (
	"io"
	"strings"

	"github.com/rayal-systems/bookapi/config"
	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/internal/jsonlog"
	"github.com/rayal-systems/bookapi/repository"
)

// mockRepository is a stateful in-memory stand-in for the Postgres
// repository, mirroring its sentinel error behaviour.
type mockRepository struct {
	countries      map[int64]*data.Country
	authors        map[int64]*data.Author
	categories     map[int64]*data.Category
	books          map[int64]*data.Book
	reviewers      map[int64]*data.Reviewer
	reviews        map[int64]*data.Review
	bookAuthors    map[int64][]int64
	bookCategories map[int64][]int64
	nextID         int64
}

func newMockRepository() *mockRepository {
	m := &mockRepository{
		countries:      make(map[int64]*data.Country),
		authors:        make(map[int64]*data.Author),
		categories:     make(map[int64]*data.Category),
		books:          make(map[int64]*data.Book),
		reviewers:      make(map[int64]*data.Reviewer),
		reviews:        make(map[int64]*data.Review),
		bookAuthors:    make(map[int64][]int64),
		bookCategories: make(map[int64][]int64),
		nextID:         100,
	}
	m.countries[1] = &data.Country{ID: 1, Name: "England"}
	m.countries[2] = &data.Country{ID: 2, Name: "Nigeria"}
	m.authors[1] = &data.Author{ID: 1, FirstName: "George", LastName: "Orwell", CountryID: 1}
	m.authors[2] = &data.Author{ID: 2, FirstName: "Chinua", LastName: "Achebe", CountryID: 2}
	m.categories[1] = &data.Category{ID: 1, Name: "Fiction"}
	m.categories[2] = &data.Category{ID: 2, Name: "Classic"}
	m.books[1] = &data.Book{ID: 1, Title: "Nineteen Eighty-Four", ISBN: "9780451524935", Version: 1}
	m.bookAuthors[1] = []int64{1}
	m.bookCategories[1] = []int64{1, 2}
	m.reviewers[1] = &data.Reviewer{ID: 1, FirstName: "Ada", LastName: "Nwosu"}
	m.reviews[1] = &data.Review{ID: 1, Headline: "Bleak but essential", ReviewText: "Still relevant.", Rating: 4, BookID: 1, ReviewerID: 1, Version: 1}
	return m
}

func newTestService(repo repository.Repository) *service {
	return New(config.Config{}, jsonlog.New(io.Discard, jsonlog.LevelOff), repo)
}

func (m *mockRepository) newID() int64 {
	m.nextID++
	return m.nextID
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// books

func (m *mockRepository) BookExists(bookID int64) (bool, error) {
	_, ok := m.books[bookID]
	return ok, nil
}

func (m *mockRepository) BookExistsByISBN(isbn string) (bool, error) {
	for _, book := range m.books {
		if book.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) GetBook(bookID int64) (*data.Book, error) {
	book, ok := m.books[bookID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *book
	return &copied, nil
}

func (m *mockRepository) GetBookByISBN(isbn string) (*data.Book, error) {
	for _, book := range m.books {
		if book.ISBN == isbn {
			copied := *book
			return &copied, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockRepository) GetAllBooks() ([]*data.Book, error) {
	books := []*data.Book{}
	for _, book := range m.books {
		books = append(books, book)
	}
	return books, nil
}

func (m *mockRepository) GetBookRating(bookID int64) (float64, error) {
	var sum, count float64
	for _, review := range m.reviews {
		if review.BookID == bookID {
			sum += float64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / count, nil
}

func (m *mockRepository) IsDuplicateISBN(bookID int64, isbn string) (bool, error) {
	for _, book := range m.books {
		if book.ID != bookID && normalize(book.ISBN) == normalize(isbn) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) CreateBook(authorIDs, categoryIDs []int64, book *data.Book) error {
	book.ID = m.newID()
	book.Version = 1
	m.books[book.ID] = book
	m.bookAuthors[book.ID] = authorIDs
	m.bookCategories[book.ID] = categoryIDs
	return nil
}

func (m *mockRepository) UpdateBook(authorIDs, categoryIDs []int64, book *data.Book) error {
	stored, ok := m.books[book.ID]
	if !ok || stored.Version != book.Version {
		return repository.ErrEditConflict
	}
	book.Version++
	m.books[book.ID] = book
	m.bookAuthors[book.ID] = authorIDs
	m.bookCategories[book.ID] = categoryIDs
	return nil
}

func (m *mockRepository) DeleteBook(bookID int64) error {
	if _, ok := m.books[bookID]; !ok {
		return repository.ErrRecordNotFound
	}
	for id, review := range m.reviews {
		if review.BookID == bookID {
			delete(m.reviews, id)
		}
	}
	delete(m.books, bookID)
	delete(m.bookAuthors, bookID)
	delete(m.bookCategories, bookID)
	return nil
}

// authors

func (m *mockRepository) AuthorExists(authorID int64) (bool, error) {
	_, ok := m.authors[authorID]
	return ok, nil
}

func (m *mockRepository) GetAuthor(authorID int64) (*data.Author, error) {
	author, ok := m.authors[authorID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *author
	return &copied, nil
}

func (m *mockRepository) GetAuthors() ([]*data.Author, error) {
	authors := []*data.Author{}
	for _, author := range m.authors {
		authors = append(authors, author)
	}
	return authors, nil
}

func (m *mockRepository) GetBooksByAuthor(authorID int64) ([]*data.Book, error) {
	books := []*data.Book{}
	for bookID, authorIDs := range m.bookAuthors {
		for _, id := range authorIDs {
			if id == authorID {
				books = append(books, m.books[bookID])
			}
		}
	}
	return books, nil
}

func (m *mockRepository) GetAuthorsOfBook(bookID int64) ([]*data.Author, error) {
	authors := []*data.Author{}
	for _, authorID := range m.bookAuthors[bookID] {
		authors = append(authors, m.authors[authorID])
	}
	return authors, nil
}

func (m *mockRepository) CreateAuthor(author *data.Author) error {
	author.ID = m.newID()
	m.authors[author.ID] = author
	return nil
}

func (m *mockRepository) UpdateAuthor(author *data.Author) error {
	if _, ok := m.authors[author.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	m.authors[author.ID] = author
	return nil
}

func (m *mockRepository) DeleteAuthor(authorID int64) error {
	if _, ok := m.authors[authorID]; !ok {
		return repository.ErrRecordNotFound
	}
	for _, authorIDs := range m.bookAuthors {
		for _, id := range authorIDs {
			if id == authorID {
				return repository.ErrRecordReferenced
			}
		}
	}
	delete(m.authors, authorID)
	return nil
}

// categories

func (m *mockRepository) CategoryExists(categoryID int64) (bool, error) {
	_, ok := m.categories[categoryID]
	return ok, nil
}

func (m *mockRepository) GetCategory(categoryID int64) (*data.Category, error) {
	category, ok := m.categories[categoryID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *mockRepository) GetCategories() ([]*data.Category, error) {
	categories := []*data.Category{}
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (m *mockRepository) GetCategoriesOfBook(bookID int64) ([]*data.Category, error) {
	categories := []*data.Category{}
	for _, categoryID := range m.bookCategories[bookID] {
		categories = append(categories, m.categories[categoryID])
	}
	return categories, nil
}

func (m *mockRepository) GetBooksForCategory(categoryID int64) ([]*data.Book, error) {
	books := []*data.Book{}
	for bookID, categoryIDs := range m.bookCategories {
		for _, id := range categoryIDs {
			if id == categoryID {
				books = append(books, m.books[bookID])
			}
		}
	}
	return books, nil
}

func (m *mockRepository) IsDuplicateCategoryName(categoryID int64, name string) (bool, error) {
	for _, category := range m.categories {
		if category.ID != categoryID && normalize(category.Name) == normalize(name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) CreateCategory(category *data.Category) error {
	category.ID = m.newID()
	m.categories[category.ID] = category
	return nil
}

func (m *mockRepository) UpdateCategory(category *data.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockRepository) DeleteCategory(categoryID int64) error {
	if _, ok := m.categories[categoryID]; !ok {
		return repository.ErrRecordNotFound
	}
	for _, categoryIDs := range m.bookCategories {
		for _, id := range categoryIDs {
			if id == categoryID {
				return repository.ErrRecordReferenced
			}
		}
	}
	delete(m.categories, categoryID)
	return nil
}

// countries

func (m *mockRepository) CountryExists(countryID int64) (bool, error) {
	_, ok := m.countries[countryID]
	return ok, nil
}

func (m *mockRepository) GetCountry(countryID int64) (*data.Country, error) {
	country, ok := m.countries[countryID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *country
	return &copied, nil
}

func (m *mockRepository) GetCountries() ([]*data.Country, error) {
	countries := []*data.Country{}
	for _, country := range m.countries {
		countries = append(countries, country)
	}
	return countries, nil
}

func (m *mockRepository) GetCountryOfAuthor(authorID int64) (*data.Country, error) {
	author, ok := m.authors[authorID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return m.GetCountry(author.CountryID)
}

func (m *mockRepository) GetAuthorsFromCountry(countryID int64) ([]*data.Author, error) {
	authors := []*data.Author{}
	for _, author := range m.authors {
		if author.CountryID == countryID {
			authors = append(authors, author)
		}
	}
	return authors, nil
}

// reviewers

func (m *mockRepository) ReviewerExists(reviewerID int64) (bool, error) {
	_, ok := m.reviewers[reviewerID]
	return ok, nil
}

func (m *mockRepository) GetReviewer(reviewerID int64) (*data.Reviewer, error) {
	reviewer, ok := m.reviewers[reviewerID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *reviewer
	return &copied, nil
}

func (m *mockRepository) GetReviewers() ([]*data.Reviewer, error) {
	reviewers := []*data.Reviewer{}
	for _, reviewer := range m.reviewers {
		reviewers = append(reviewers, reviewer)
	}
	return reviewers, nil
}

func (m *mockRepository) GetReviewsByReviewer(reviewerID int64) ([]*data.Review, error) {
	reviews := []*data.Review{}
	for _, review := range m.reviews {
		if review.ReviewerID == reviewerID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (m *mockRepository) GetReviewerOfReview(reviewID int64) (*data.Reviewer, error) {
	review, ok := m.reviews[reviewID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return m.GetReviewer(review.ReviewerID)
}

func (m *mockRepository) CreateReviewer(reviewer *data.Reviewer) error {
	reviewer.ID = m.newID()
	m.reviewers[reviewer.ID] = reviewer
	return nil
}

func (m *mockRepository) UpdateReviewer(reviewer *data.Reviewer) error {
	if _, ok := m.reviewers[reviewer.ID]; !ok {
		return repository.ErrRecordNotFound
	}
	m.reviewers[reviewer.ID] = reviewer
	return nil
}

func (m *mockRepository) DeleteReviewer(reviewerID int64) error {
	if _, ok := m.reviewers[reviewerID]; !ok {
		return repository.ErrRecordNotFound
	}
	for id, review := range m.reviews {
		if review.ReviewerID == reviewerID {
			delete(m.reviews, id)
		}
	}
	delete(m.reviewers, reviewerID)
	return nil
}

// reviews

func (m *mockRepository) ReviewExists(reviewID int64) (bool, error) {
	_, ok := m.reviews[reviewID]
	return ok, nil
}

func (m *mockRepository) GetReview(reviewID int64) (*data.Review, error) {
	review, ok := m.reviews[reviewID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (m *mockRepository) GetReviews() ([]*data.Review, error) {
	reviews := []*data.Review{}
	for _, review := range m.reviews {
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (m *mockRepository) GetReviewsOfBook(bookID int64) ([]*data.Review, error) {
	reviews := []*data.Review{}
	for _, review := range m.reviews {
		if review.BookID == bookID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (m *mockRepository) GetBookOfReview(reviewID int64) (*data.Book, error) {
	review, ok := m.reviews[reviewID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return m.GetBook(review.BookID)
}

func (m *mockRepository) CreateReview(review *data.Review) error {
	review.ID = m.newID()
	review.Version = 1
	m.reviews[review.ID] = review
	return nil
}

func (m *mockRepository) UpdateReview(review *data.Review) error {
	stored, ok := m.reviews[review.ID]
	if !ok || stored.Version != review.Version {
		return repository.ErrEditConflict
	}
	review.Version++
	m.reviews[review.ID] = review
	return nil
}

func (m *mockRepository) DeleteReview(reviewID int64) error {
	if _, ok := m.reviews[reviewID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(m.reviews, reviewID)
	return nil
}

// seeder

func (m *mockRepository) Seed() error {
	return nil
}
