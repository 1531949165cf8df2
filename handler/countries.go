package handler

import (
	"errors"
	"net/http"

	"github.com/rayal-systems/bookapi/service"
)

func (h *Handler) listCountriesHandler(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.ListCountries()
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"countries": countries}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showCountryHandler(w http.ResponseWriter, r *http.Request) {
	countryID, err := h.readIDParam(r, "countryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	country, err := h.service.GetCountry(countryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"country": country}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showCountrySubresourceHandler(w http.ResponseWriter, r *http.Request) {
	switch r.PathValue("subresource") {
	case "authors":
		h.listAuthorsFromCountryHandler(w, r)
	default:
		h.notFoundResponse(w, r)
	}
}

func (h *Handler) listAuthorsFromCountryHandler(w http.ResponseWriter, r *http.Request) {
	countryID, err := h.readIDParam(r, "countryId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	authors, err := h.service.GetAuthorsFromCountry(countryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"authors": authors}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showCountryOfAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "authorId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	country, err := h.service.GetCountryOfAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"country": country}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
