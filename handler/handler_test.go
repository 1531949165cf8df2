package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rayal-systems/bookapi/config"
	"github.com/rayal-systems/bookapi/data"
	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/internal/jsonlog"
	"github.com/rayal-systems/bookapi/service"
)

// stubService overrides individual service methods per test. Calling an
// endpoint whose method is not stubbed panics, which the recoverPanic
// middleware turns into a 500.
type stubService struct {
	service.Service
	getBook              func(bookID int64) (*data.Book, error)
	getBookByISBN        func(isbn string) (*data.Book, error)
	getBookRating        func(bookID int64) (float64, error)
	createBook           func(authorIDs, categoryIDs []int64, body *dto.CreateBookRequestBody) (*data.Book, error)
	updateBook           func(bookID int64, authorIDs, categoryIDs []int64, body *dto.UpdateBookRequestBody) error
	deleteAuthor         func(authorID int64) error
	getReview            func(reviewID int64) (*data.Review, error)
	updateReview         func(reviewID int64, body *dto.UpdateReviewRequestBody) error
	deleteReview         func(reviewID int64) error
	getReviewsByReviewer func(reviewerID int64) ([]*data.Review, error)
	deleteReviewer       func(reviewerID int64) error
}

func (s *stubService) GetBook(bookID int64) (*data.Book, error) {
	return s.getBook(bookID)
}

func (s *stubService) GetBookByISBN(isbn string) (*data.Book, error) {
	return s.getBookByISBN(isbn)
}

func (s *stubService) GetBookRating(bookID int64) (float64, error) {
	return s.getBookRating(bookID)
}

func (s *stubService) CreateBook(authorIDs, categoryIDs []int64, body *dto.CreateBookRequestBody) (*data.Book, error) {
	return s.createBook(authorIDs, categoryIDs, body)
}

func (s *stubService) UpdateBook(bookID int64, authorIDs, categoryIDs []int64, body *dto.UpdateBookRequestBody) error {
	return s.updateBook(bookID, authorIDs, categoryIDs, body)
}

func (s *stubService) DeleteAuthor(authorID int64) error {
	return s.deleteAuthor(authorID)
}

func (s *stubService) GetReview(reviewID int64) (*data.Review, error) {
	return s.getReview(reviewID)
}

func (s *stubService) UpdateReview(reviewID int64, body *dto.UpdateReviewRequestBody) error {
	return s.updateReview(reviewID, body)
}

func (s *stubService) DeleteReview(reviewID int64) error {
	return s.deleteReview(reviewID)
}

func (s *stubService) GetReviewsByReviewer(reviewerID int64) ([]*data.Review, error) {
	return s.getReviewsByReviewer(reviewerID)
}

func (s *stubService) DeleteReviewer(reviewerID int64) error {
	return s.deleteReviewer(reviewerID)
}

func newTestHandler(svc service.Service) *Handler {
	var cfg config.Config
	cfg.Server.Env = "test"
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	cache := ttlcache.New(ttlcache.WithTTL[string, float64](time.Minute))
	return New(cfg, logger, cache, svc)
}

func doRequest(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	return body
}

func TestHealthcheck(t *testing.T) {
	h := newTestHandler(&stubService{})
	rr := doRequest(t, h, http.MethodGet, "/api/healthcheck", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200; got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["status"] != "available" {
		t.Errorf("expected status available; got %v", body["status"])
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	h := newTestHandler(&stubService{})
	rr := doRequest(t, h, http.MethodGet, "/api/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404; got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if _, ok := body["error"]; !ok {
		t.Error("expected a JSON error body on an unknown route")
	}
}

func TestWrongMethodReturnsJSON405(t *testing.T) {
	h := newTestHandler(&stubService{})
	rr := doRequest(t, h, http.MethodPatch, "/api/books/1", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405; got %d", rr.Code)
	}
	if rr.Header().Get("Allow") == "" {
		t.Error("expected an Allow header listing the supported methods")
	}
	body := decodeBody(t, rr)
	if _, ok := body["error"]; !ok {
		t.Error("expected a JSON error body on a wrong-method request")
	}
}
