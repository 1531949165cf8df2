package dto

// CreateCategoryRequestBody defines a request body for CreateCategory service.
type CreateCategoryRequestBody struct {
	Name string `json:"name"`
}

// UpdateCategoryRequestBody defines a request body for UpdateCategory service.
type UpdateCategoryRequestBody struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
