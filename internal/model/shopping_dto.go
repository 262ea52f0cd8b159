package model

// CreateListRequest represents a request to create a shopping list
type CreateListRequest struct {
	Name string `json:"name"`
}

// RenameListRequest represents a request to rename a shopping list
type RenameListRequest struct {
	Name string `json:"name"`
}

// AddItemRequest represents a request to add an item to a shopping list
type AddItemRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Quantity int      `json:"quantity"`
	Unit     string   `json:"unit"`
	Price    *float64 `json:"price"`
	Priority string   `json:"priority"`
	Notes    string   `json:"notes"`
}

// UpdateItemRequest represents a partial update to a shopping item.
// Only fields present in the request body are applied.
type UpdateItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	Unit        *string  `json:"unit"`
	Price       *float64 `json:"price"`
	IsCompleted *bool    `json:"isCompleted"`
	Priority    *string  `json:"priority"`
	Notes       *string  `json:"notes"`
}

// BulkAddRequest represents a request to add several items at once
type BulkAddRequest struct {
	Items []AddItemRequest `json:"items"`
}
