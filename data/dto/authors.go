package dto

// CreateAuthorRequestBody defines a request body for CreateAuthor service.
// The country is referenced by id only and is resolved to the stored
// country record server-side.
type CreateAuthorRequestBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CountryID int64  `json:"country_id"`
}

// UpdateAuthorRequestBody defines a request body for UpdateAuthor service.
type UpdateAuthorRequestBody struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CountryID int64  `json:"country_id"`
}
