package model

import "github.com/grocerly/grocerly/internal/domain"

// IngredientRequest represents one ingredient line in a recipe payload
type IngredientRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes"`
}

// CreateRecipeRequest represents a request to create a recipe
type CreateRecipeRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Image        string              `json:"image"`
	PrepTime     int                 `json:"prepTime"`
	CookTime     int                 `json:"cookTime"`
	Servings     int                 `json:"servings"`
	Difficulty   string              `json:"difficulty"`
	Ingredients  []IngredientRequest `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Tags         []string            `json:"tags"`
}

// UpdateRecipeRequest represents a partial update to a recipe.
// Ingredients, instructions and tags replace the stored set when present.
type UpdateRecipeRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Image        *string             `json:"image"`
	PrepTime     *int                `json:"prepTime"`
	CookTime     *int                `json:"cookTime"`
	Servings     *int                `json:"servings"`
	Difficulty   *string             `json:"difficulty"`
	Ingredients  []IngredientRequest `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Tags         []string            `json:"tags"`
}

// RateRecipeRequest represents a rating submission for a recipe
type RateRecipeRequest struct {
	Rating float64 `json:"rating"`
}

// RecipeListResponse pairs a page of recipes with pagination info
type RecipeListResponse struct {
	Recipes    []domain.Recipe   `json:"recipes"`
	Pagination domain.Pagination `json:"pagination"`
}
