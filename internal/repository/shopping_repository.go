package repository

import (
	"context"
	"time"

	"github.com/grocerly/grocerly/internal/domain"
)

// ShoppingStats summarizes a user's shopping activity for the stats endpoint.
type ShoppingStats struct {
	Lists          int
	TotalItems     int
	CompletedItems int
}

// ShoppingRepository defines operations for shopping lists, their items,
// and the purchase records derived from completed priced items.
type ShoppingRepository interface {
	GetLists(ctx context.Context, userID string) ([]domain.ShoppingList, error)
	CreateList(ctx context.Context, userID, name string) (*domain.ShoppingList, error)
	GetList(ctx context.Context, userID, listID string) (*domain.ShoppingList, error)
	RenameList(ctx context.Context, userID, listID, name string) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, userID, listID string) error

	AddItem(ctx context.Context, userID, listID string, item *domain.ShoppingItem) error
	GetItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, item *domain.ShoppingItem) error
	DeleteItem(ctx context.Context, userID, itemID string) error
	ToggleItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error)
	ClearCompleted(ctx context.Context, userID, listID string) error

	// GetPurchases returns completed, priced items as purchase records,
	// oldest completion first. A nil since returns the full history.
	GetPurchases(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error)
	GetStats(ctx context.Context, userID string) (*ShoppingStats, error)
}
