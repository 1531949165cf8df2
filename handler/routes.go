package handler

import (
	"expvar"
	"net/http"
)

// Routes assembles the route table. Patterns like /api/authors/books/{bookId}
// and /api/authors/{authorId}/books would conflict on the standard mux, since
// a request such as /api/authors/books/books matches both and neither pattern
// is more specific. The parameter-first routes are therefore registered with a
// {subresource} tail that a dispatch handler checks, leaving the static-prefix
// routes as strict subsets that win by precedence.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/books", h.listBooksHandler)
	mux.HandleFunc("POST /api/books", h.createBookHandler)
	mux.HandleFunc("GET /api/books/{bookId}", h.showBookHandler)
	mux.HandleFunc("GET /api/books/isbn/{isbn}", h.showBookByISBNHandler)
	mux.HandleFunc("GET /api/books/{bookId}/{subresource}", h.showBookSubresourceHandler)
	mux.HandleFunc("PUT /api/books/{bookId}", h.updateBookHandler)
	mux.HandleFunc("DELETE /api/books/{bookId}", h.deleteBookHandler)

	mux.HandleFunc("GET /api/authors", h.listAuthorsHandler)
	mux.HandleFunc("POST /api/authors", h.createAuthorHandler)
	mux.HandleFunc("GET /api/authors/{authorId}", h.showAuthorHandler)
	mux.HandleFunc("GET /api/authors/{authorId}/{subresource}", h.showAuthorSubresourceHandler)
	mux.HandleFunc("GET /api/authors/books/{bookId}", h.listAuthorsOfBookHandler)
	mux.HandleFunc("PUT /api/authors/{authorId}", h.updateAuthorHandler)
	mux.HandleFunc("DELETE /api/authors/{authorId}", h.deleteAuthorHandler)

	mux.HandleFunc("GET /api/categories", h.listCategoriesHandler)
	mux.HandleFunc("POST /api/categories", h.createCategoryHandler)
	mux.HandleFunc("GET /api/categories/{categoryId}", h.showCategoryHandler)
	mux.HandleFunc("GET /api/categories/{categoryId}/{subresource}", h.showCategorySubresourceHandler)
	mux.HandleFunc("GET /api/categories/books/{bookId}", h.listCategoriesOfBookHandler)
	mux.HandleFunc("PUT /api/categories/{categoryId}", h.updateCategoryHandler)
	mux.HandleFunc("DELETE /api/categories/{categoryId}", h.deleteCategoryHandler)

	mux.HandleFunc("GET /api/countries", h.listCountriesHandler)
	mux.HandleFunc("GET /api/countries/{countryId}", h.showCountryHandler)
	mux.HandleFunc("GET /api/countries/{countryId}/{subresource}", h.showCountrySubresourceHandler)
	mux.HandleFunc("GET /api/countries/authors/{authorId}", h.showCountryOfAuthorHandler)

	mux.HandleFunc("GET /api/reviewers", h.listReviewersHandler)
	mux.HandleFunc("POST /api/reviewers", h.createReviewerHandler)
	mux.HandleFunc("GET /api/reviewers/{reviewerId}", h.showReviewerHandler)
	mux.HandleFunc("GET /api/reviewers/{reviewerId}/reviews", h.listReviewsByReviewerHandler)
	mux.HandleFunc("PUT /api/reviewers/{reviewerId}", h.updateReviewerHandler)
	mux.HandleFunc("DELETE /api/reviewers/{reviewerId}", h.deleteReviewerHandler)

	mux.HandleFunc("GET /api/reviews", h.listReviewsHandler)
	mux.HandleFunc("POST /api/reviews", h.createReviewHandler)
	mux.HandleFunc("GET /api/reviews/{reviewId}", h.showReviewHandler)
	mux.HandleFunc("GET /api/reviews/{reviewId}/{subresource}", h.showReviewSubresourceHandler)
	mux.HandleFunc("GET /api/reviews/books/{bookId}", h.listReviewsOfBookHandler)
	mux.HandleFunc("PUT /api/reviews/{reviewId}", h.updateReviewHandler)
	mux.HandleFunc("DELETE /api/reviews/{reviewId}", h.deleteReviewHandler)

	mux.HandleFunc("GET /api/healthcheck", h.healthcheckHandler)
	mux.HandleFunc("GET /debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(h.routeErrors(mux)))))
}

// routeErrors replaces the mux's built-in plain-text 404 and 405 responses
// with the JSON error envelope. The mux reports both cases with an empty
// pattern, so the handler it returns is run against a throwaway writer to
// learn which status it would have sent.
func (h *Handler) routeErrors(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, pattern := mux.Handler(r)
		if pattern == "" {
			rec := &statusRecorder{header: make(http.Header)}
			handler.ServeHTTP(rec, r)
			if rec.status == http.StatusMethodNotAllowed {
				w.Header().Set("Allow", rec.header.Get("Allow"))
				h.methodNotAllowedResponse(w, r)
			} else {
				h.notFoundResponse(w, r)
			}
			return
		}
		mux.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	header http.Header
	status int
}

func (rec *statusRecorder) Header() http.Header { return rec.header }

func (rec *statusRecorder) WriteHeader(status int) { rec.status = status }

func (rec *statusRecorder) Write(b []byte) (int, error) { return len(b), nil }
