package domain

import (
	"time"
)

// Priority is the urgency level of a shopping item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the numeric ordering of a priority for sorting.
// Unknown values rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ShoppingItem is a single entry on a shopping list. Price is optional;
// CompletedAt is set exactly when IsCompleted flips false to true and
// cleared when it flips back.
type ShoppingItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    int        `json:"quantity"`
	Unit        string     `json:"unit"`
	Price       *float64   `json:"price,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	Priority    Priority   `json:"priority"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ShoppingList is a named, user-owned collection of items.
type ShoppingList struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Name      string         `json:"name"`
	Items     []ShoppingItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// PurchaseRecord is the analytics-facing view of a completed, priced
// shopping item at the moment of completion.
type PurchaseRecord struct {
	Amount     float64   `json:"amount"`
	Category   string    `json:"category"`
	ItemName   string    `json:"itemName"`
	OccurredAt time.Time `json:"occurredAt"`
}
