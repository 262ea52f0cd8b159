package model

// CreateCategoryRequest represents a request to create a budget category
type CreateCategoryRequest struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
	Spent float64 `json:"spent"`
	Color string  `json:"color"`
}

// UpdateCategoryRequest represents a partial update to a budget category
type UpdateCategoryRequest struct {
	Name  *string  `json:"name"`
	Limit *float64 `json:"limit"`
	Spent *float64 `json:"spent"`
	Color *string  `json:"color"`
}

// UpdateSpentRequest adjusts a category's spent amount by a signed delta
type UpdateSpentRequest struct {
	Amount float64 `json:"amount"`
}

// CreateSpendingRecordRequest represents a request to log a spending record
type CreateSpendingRecordRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}
