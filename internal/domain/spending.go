package domain

import (
	"time"
)

// SpendingRecord is a standalone manual spending entry. After
// normalization it has the same shape as a PurchaseRecord.
type SpendingRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
