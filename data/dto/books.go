package dto

import "time"

// CreateBookRequestBody defines a request body for CreateBook service.
// Author and category associations are supplied through the authId and
// catId query string parameters, not the body.
type CreateBookRequestBody struct {
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	DatePublished *time.Time `json:"date_published"`
}

// UpdateBookRequestBody defines a request body for UpdateBook service.
// Updates are full replacements; the optional ID must match the path id.
type UpdateBookRequestBody struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	DatePublished *time.Time `json:"date_published"`
}
