package repository

import (
	"context"

	"github.com/grocerly/grocerly/internal/domain"
)

// RecipeRepository defines operations for recipes
type RecipeRepository interface {
	// GetRecipes lists public recipes plus, when filter.UserID is set, that
	// user's own recipes. Returns the page and the total match count.
	GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error)
	GetFeatured(ctx context.Context, limit int) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipe(ctx context.Context, userID, recipeID string, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, userID, recipeID string) error
	UpdateRating(ctx context.Context, recipeID string, rating float64) (*domain.Recipe, error)
	GetTagCounts(ctx context.Context) ([]domain.TagCount, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
