package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rayal-systems/bookapi/data/dto"
	"github.com/rayal-systems/bookapi/service"
)

func (h *Handler) listReviewersHandler(w http.ResponseWriter, r *http.Request) {
	reviewers, err := h.service.ListReviewers()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviewers": reviewers}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showReviewerHandler(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := h.readIDParam(r, "reviewerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviewer, err := h.service.GetReviewer(reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviewer": reviewer}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listReviewsByReviewerHandler(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := h.readIDParam(r, "reviewerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviews, err := h.service.GetReviewsByReviewer(reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviews": reviews}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showReviewerOfReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviewer, err := h.service.GetReviewerOfReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviewer": reviewer}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createReviewerHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateReviewerRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	reviewer, err := h.service.CreateReviewer(&requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/api/reviewers/%d", reviewer.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"reviewer": reviewer}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updateReviewerHandler(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := h.readIDParam(r, "reviewerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	var requestBody dto.UpdateReviewerRequestBody
	err = h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	err = h.service.UpdateReviewer(reviewerID, &requestBody)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, errors.New("the request is inconsistent with the resource being updated"))
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteReviewerHandler(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := h.readIDParam(r, "reviewerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	reviews, err := h.service.GetReviewsByReviewer(reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.service.DeleteReviewer(reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	// The cascade removed this reviewer's reviews, so every book they
	// reviewed has a new rating.
	for _, review := range reviews {
		h.cache.Delete(fmt.Sprintf("book:%d:rating", review.BookID))
	}
	w.WriteHeader(http.StatusNoContent)
}
