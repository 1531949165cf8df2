package dto

// CreateReviewerRequestBody defines a request body for CreateReviewer service.
type CreateReviewerRequestBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateReviewerRequestBody defines a request body for UpdateReviewer service.
type UpdateReviewerRequestBody struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
