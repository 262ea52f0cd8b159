package service

import (
	"context"
	"fmt"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// ItemPatch carries the fields of a partial item update. Nil fields are
// left unchanged.
type ItemPatch struct {
	Name        *string
	Category    *string
	Quantity    *int
	Unit        *string
	Price       *float64
	IsCompleted *bool
	Priority    *string
	Notes       *string
}

// ShoppingService handles shopping list operations
type ShoppingService interface {
	GetLists(ctx context.Context, userID string) ([]domain.ShoppingList, error)
	CreateList(ctx context.Context, userID, name string) (*domain.ShoppingList, error)
	GetList(ctx context.Context, userID, listID string) (*domain.ShoppingList, error)
	RenameList(ctx context.Context, userID, listID, name string) (*domain.ShoppingList, error)
	DeleteList(ctx context.Context, userID, listID string) error

	AddItem(ctx context.Context, userID, listID string, item *domain.ShoppingItem) (*domain.ShoppingItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, patch ItemPatch) (*domain.ShoppingItem, error)
	DeleteItem(ctx context.Context, userID, itemID string) error
	ToggleItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error)
	ClearCompleted(ctx context.Context, userID, listID string) error
}

type shoppingService struct {
	shoppingRepo repository.ShoppingRepository
}

// NewShoppingService creates a new shopping service
func NewShoppingService(shoppingRepo repository.ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepo: shoppingRepo}
}

// GetLists returns all of the user's lists with their items, newest list first
func (s *shoppingService) GetLists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	return s.shoppingRepo.GetLists(ctx, userID)
}

// CreateList creates an empty list for the user
func (s *shoppingService) CreateList(ctx context.Context, userID, name string) (*domain.ShoppingList, error) {
	return s.shoppingRepo.CreateList(ctx, userID, name)
}

// GetList returns one of the user's lists with its items
func (s *shoppingService) GetList(ctx context.Context, userID, listID string) (*domain.ShoppingList, error) {
	return s.shoppingRepo.GetList(ctx, userID, listID)
}

// RenameList changes a list's name
func (s *shoppingService) RenameList(ctx context.Context, userID, listID, name string) (*domain.ShoppingList, error) {
	return s.shoppingRepo.RenameList(ctx, userID, listID, name)
}

// DeleteList permanently removes a list and its items
func (s *shoppingService) DeleteList(ctx context.Context, userID, listID string) error {
	return s.shoppingRepo.DeleteList(ctx, userID, listID)
}

// AddItem adds an item to one of the user's lists. An empty priority
// defaults to medium.
func (s *shoppingService) AddItem(ctx context.Context, userID, listID string, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
	if item.Priority == "" {
		item.Priority = domain.PriorityMedium
	}
	if err := s.shoppingRepo.AddItem(ctx, userID, listID, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial update to an item and returns the result.
// Completing an item stamps completedAt; un-completing clears it.
func (s *shoppingService) UpdateItem(ctx context.Context, userID, itemID string, patch ItemPatch) (*domain.ShoppingItem, error) {
	item, err := s.shoppingRepo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Price != nil {
		item.Price = patch.Price
	}
	if patch.IsCompleted != nil {
		item.IsCompleted = *patch.IsCompleted
	}
	if patch.Priority != nil {
		item.Priority = domain.Priority(*patch.Priority)
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}

	if err := s.shoppingRepo.UpdateItem(ctx, userID, itemID, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// DeleteItem permanently removes an item
func (s *shoppingService) DeleteItem(ctx context.Context, userID, itemID string) error {
	return s.shoppingRepo.DeleteItem(ctx, userID, itemID)
}

// ToggleItem flips an item's completion state
func (s *shoppingService) ToggleItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error) {
	return s.shoppingRepo.ToggleItem(ctx, userID, itemID)
}

// ClearCompleted removes every completed item from a list
func (s *shoppingService) ClearCompleted(ctx context.Context, userID, listID string) error {
	return s.shoppingRepo.ClearCompleted(ctx, userID, listID)
}
