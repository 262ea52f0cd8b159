package service

import (
	"context"
	"fmt"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// RecipePatch carries the fields of a partial recipe update. Nil scalar
// fields are left unchanged; non-nil slices replace the stored set.
type RecipePatch struct {
	Title        *string
	Description  *string
	Image        *string
	PrepTime     *int
	CookTime     *int
	Servings     *int
	Difficulty   *string
	Ingredients  []domain.RecipeIngredient
	Instructions []string
	Tags         []string
}

// RecipeService handles recipe operations
type RecipeService interface {
	GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, *domain.Pagination, error)
	GetFeatured(ctx context.Context, limit int) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error)
	CreateRecipe(ctx context.Context, userID string, recipe *domain.Recipe) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, recipeID string, patch RecipePatch) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID string) error
	RateRecipe(ctx context.Context, recipeID string, rating float64) (*domain.Recipe, error)
	GetCategories(ctx context.Context) ([]domain.TagCount, error)
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
}

// NewRecipeService creates a new recipe service
func NewRecipeService(recipeRepo repository.RecipeRepository) RecipeService {
	return &recipeService{recipeRepo: recipeRepo}
}

// GetRecipes lists recipes matching the filter along with pagination info
func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, *domain.Pagination, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	recipes, total, err := s.recipeRepo.GetRecipes(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	pagination := &domain.Pagination{
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
		HasMore: filter.Offset+len(recipes) < total,
	}

	return recipes, pagination, nil
}

// GetFeatured returns the highest-rated public recipes
func (s *recipeService) GetFeatured(ctx context.Context, limit int) ([]domain.Recipe, error) {
	if limit <= 0 {
		limit = 6
	}

	return s.recipeRepo.GetFeatured(ctx, limit)
}

// GetRecipe returns one recipe by id
func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	return s.recipeRepo.GetRecipe(ctx, recipeID)
}

// CreateRecipe stores a new recipe owned by the user
func (s *recipeService) CreateRecipe(ctx context.Context, userID string, recipe *domain.Recipe) (*domain.Recipe, error) {
	recipe.UserID = userID
	if recipe.Difficulty == "" {
		recipe.Difficulty = domain.DifficultyMedium
	}
	if err := s.recipeRepo.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// UpdateRecipe applies a partial update to one of the user's own recipes
func (s *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID string, patch RecipePatch) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	// Public recipes and other users' recipes are not editable; report
	// both the same way as a missing record
	if recipe.UserID != userID {
		return nil, repository.ErrNotFound
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Image != nil {
		recipe.Image = *patch.Image
	}
	if patch.PrepTime != nil {
		recipe.PrepTime = *patch.PrepTime
	}
	if patch.CookTime != nil {
		recipe.CookTime = *patch.CookTime
	}
	if patch.Servings != nil {
		recipe.Servings = *patch.Servings
	}
	if patch.Difficulty != nil {
		recipe.Difficulty = domain.Difficulty(*patch.Difficulty)
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = patch.Ingredients
	}
	if patch.Instructions != nil {
		recipe.Instructions = patch.Instructions
	}
	if patch.Tags != nil {
		recipe.Tags = patch.Tags
	}

	if err := s.recipeRepo.UpdateRecipe(ctx, userID, recipeID, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return recipe, nil
}

// DeleteRecipe permanently removes one of the user's own recipes
func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	return s.recipeRepo.DeleteRecipe(ctx, userID, recipeID)
}

// RateRecipe folds a submitted rating into the stored one by averaging
// the two values
func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, rating float64) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	newRating := (recipe.Rating + rating) / 2
	return s.recipeRepo.UpdateRating(ctx, recipeID, newRating)
}

// GetCategories returns every tag in use with its recipe count
func (s *recipeService) GetCategories(ctx context.Context) ([]domain.TagCount, error) {
	return s.recipeRepo.GetTagCounts(ctx)
}
