package dto

// CreateReviewRequestBody defines a request body for CreateReview service.
// The book and reviewer are referenced by id only; nested objects from
// clients are never accepted.
type CreateReviewRequestBody struct {
	Headline   string `json:"headline"`
	ReviewText string `json:"review_text"`
	Rating     int32  `json:"rating"`
	BookID     int64  `json:"book_id"`
	ReviewerID int64  `json:"reviewer_id"`
}

// UpdateReviewRequestBody defines a request body for UpdateReview service.
type UpdateReviewRequestBody struct {
	ID         int64  `json:"id"`
	Headline   string `json:"headline"`
	ReviewText string `json:"review_text"`
	Rating     int32  `json:"rating"`
	BookID     int64  `json:"book_id"`
	ReviewerID int64  `json:"reviewer_id"`
}
