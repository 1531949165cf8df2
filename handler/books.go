package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/service"
)

func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showBookByISBNHandler(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if isbn == "" {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.GetBookByISBN(isbn)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showBookSubresourceHandler(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("subresource") {
	case "rating":
		h.showBookRatingHandler(w, r)
	default:
		h.notFoundResponse(w, r)
	}
}

func (h *Handler) showBookRatingHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var rating float64
	key := fmt.Sprintf("book:%d:rating", bookID)
	if item := h.cache.Get(key); item != nil {
		rating = item.Value()
	} else {
		rating, err = h.service.GetBookRating(bookID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrRecordNotFound):
				h.notFoundResponse(w, r)
			default:
				h.serverErrorResponse(w, r, err)
			}
			return
		}
		h.cache.Set(key, rating, time.Minute)
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"rating": rating}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	authorIDs, err := h.readIDList(qs, "authId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	categoryIDs, err := h.readIDList(qs, "catId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	var requestBody dto.CreateBookRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.CreateBook(authorIDs, categoryIDs, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, errors.New("at least one author id and one category id must be supplied"))
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.recordAlreadyExistsResponse(w, r)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"book": book}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	qs := r.URL.Query()
	authorIDs, err := h.readIDList(qs, "authId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	categoryIDs, err := h.readIDList(qs, "catId")
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	var requestBody dto.UpdateBookRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	err = h.service.UpdateBook(bookID, authorIDs, categoryIDs, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, errors.New("the request is inconsistent with the resource being updated"))
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.recordAlreadyExistsResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	h.cache.Delete(fmt.Sprintf("book:%d:rating", bookID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	h.cache.Delete(fmt.Sprintf("book:%d:rating", bookID))
	w.WriteHeader(http.StatusNoContent)
}
