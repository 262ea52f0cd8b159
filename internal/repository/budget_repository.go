package repository

import (
	"context"

	"github.com/grocerly/grocerly/internal/domain"
)

// BudgetRepository defines operations for budget categories
type BudgetRepository interface {
	GetCategories(ctx context.Context, userID string) ([]domain.BudgetCategory, error)
	CreateCategory(ctx context.Context, category *domain.BudgetCategory) error
	GetCategory(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, category *domain.BudgetCategory) error
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	UpdateSpent(ctx context.Context, userID, categoryID string, spent float64) (*domain.BudgetCategory, error)
	ResetSpent(ctx context.Context, userID string) error
}
