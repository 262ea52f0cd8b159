package domain

import (
	"time"
)

// Difficulty grades how demanding a recipe is to prepare.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty grades.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// RecipeIngredient is one line of a recipe's ingredient list.
type RecipeIngredient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// Recipe is a public or user-owned recipe. A recipe with an empty UserID
// is public and visible to everyone.
type Recipe struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId,omitempty"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Image        string             `json:"image,omitempty"`
	PrepTime     int                `json:"prepTime"`
	CookTime     int                `json:"cookTime"`
	Servings     int                `json:"servings"`
	Difficulty   Difficulty         `json:"difficulty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Tags         []string           `json:"tags"`
	Rating       float64            `json:"rating"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// RecipeFilter narrows recipe listings.
type RecipeFilter struct {
	UserID     string // include this user's private recipes alongside public ones
	Search     string
	Category   string
	Difficulty string
	Limit      int
	Offset     int
}

// TagCount is a recipe tag with its number of public occurrences.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Pagination is the standard paging envelope for list endpoints.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}
