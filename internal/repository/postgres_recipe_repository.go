package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grocerly/grocerly/internal/domain"
)

// PostgresRecipeRepository implements RecipeRepository using PostgreSQL
type PostgresRecipeRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRecipeRepository creates a new PostgreSQL recipe repository
func NewPostgresRecipeRepository(db *pgxpool.Pool) RecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

func scanRecipe(row pgx.Row, recipe *domain.Recipe) error {
	var userID *string
	err := row.Scan(
		&recipe.ID,
		&userID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Image,
		&recipe.PrepTime,
		&recipe.CookTime,
		&recipe.Servings,
		&recipe.Difficulty,
		&recipe.Instructions,
		&recipe.Tags,
		&recipe.Rating,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if userID != nil {
		recipe.UserID = *userID
	}
	return err
}

const recipeColumns = `
	id, user_id, title, description, image, prep_time, cook_time, servings,
	difficulty, instructions, tags, rating, created_at, updated_at
`

// GetRecipes lists public recipes plus the filtering user's own, newest
// first, with optional search/category/difficulty filters and pagination
func (r *PostgresRecipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argCount := 1

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("(user_id IS NULL OR user_id = $%d)", argCount))
		args = append(args, filter.UserID)
		argCount++
	} else {
		conditions = append(conditions, "user_id IS NULL")
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR $%d = ANY(tags))", argCount, argCount, argCount+1))
		args = append(args, "%"+filter.Search+"%", filter.Search)
		argCount += 2
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(tags)", argCount))
		args = append(args, filter.Category)
		argCount++
	}

	if filter.Difficulty != "" {
		conditions = append(conditions, fmt.Sprintf("difficulty = $%d", argCount))
		args = append(args, strings.ToLower(filter.Difficulty))
		argCount++
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int
	err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM recipes %s`, whereClause), args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM recipes
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, recipeColumns, whereClause, argCount, argCount+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		var recipe domain.Recipe
		if err := scanRecipe(rows, &recipe); err != nil {
			return nil, 0, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating recipes: %w", err)
	}

	if err := r.loadIngredients(ctx, recipes); err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

func (r *PostgresRecipeRepository) loadIngredients(ctx context.Context, recipes []domain.Recipe) error {
	for i := range recipes {
		rows, err := r.db.Query(ctx, `
			SELECT id, name, amount, unit, notes
			FROM recipe_ingredients
			WHERE recipe_id = $1
			ORDER BY id
		`, recipes[i].ID)
		if err != nil {
			return fmt.Errorf("failed to get recipe ingredients: %w", err)
		}

		ingredients := []domain.RecipeIngredient{}
		for rows.Next() {
			var ing domain.RecipeIngredient
			if err := rows.Scan(&ing.ID, &ing.Name, &ing.Amount, &ing.Unit, &ing.Notes); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan ingredient: %w", err)
			}
			ingredients = append(ingredients, ing)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating ingredients: %w", err)
		}
		recipes[i].Ingredients = ingredients
	}
	return nil
}

// GetFeatured returns highly rated public recipes
func (r *PostgresRecipeRepository) GetFeatured(ctx context.Context, limit int) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM recipes
		WHERE user_id IS NULL AND rating >= 4.0
		ORDER BY rating DESC
		LIMIT $1
	`, recipeColumns), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query featured recipes: %w", err)
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		var recipe domain.Recipe
		if err := scanRecipe(rows, &recipe); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}

	if err := r.loadIngredients(ctx, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetRecipe retrieves a single recipe by ID (public or private)
func (r *PostgresRecipeRepository) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := scanRecipe(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM recipes WHERE id = $1
	`, recipeColumns), recipeID), recipe)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	recipes := []domain.Recipe{*recipe}
	if err := r.loadIngredients(ctx, recipes); err != nil {
		return nil, err
	}

	return &recipes[0], nil
}

// CreateRecipe inserts a recipe and its ingredients
func (r *PostgresRecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (user_id, title, description, image, prep_time, cook_time,
			servings, difficulty, instructions, tags)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, rating, created_at, updated_at
	`,
		recipe.UserID,
		recipe.Title,
		recipe.Description,
		recipe.Image,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
		recipe.Difficulty,
		recipe.Instructions,
		recipe.Tags,
	).Scan(&recipe.ID, &recipe.Rating, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, name, amount, unit, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, recipe.ID, ing.Name, ing.Amount, ing.Unit, ing.Notes).Scan(&ing.ID)
		if err != nil {
			return fmt.Errorf("failed to create ingredient: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateRecipe replaces a recipe owned by the user, recreating its
// ingredient rows
func (r *PostgresRecipeRepository) UpdateRecipe(ctx context.Context, userID, recipeID string, recipe *domain.Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = scanRecipe(tx.QueryRow(ctx, fmt.Sprintf(`
		UPDATE recipes
		SET title = $1, description = $2, image = $3, prep_time = $4, cook_time = $5,
		    servings = $6, difficulty = $7, instructions = $8, tags = $9, updated_at = now()
		WHERE id = $10 AND user_id = $11
		RETURNING %s
	`, recipeColumns),
		recipe.Title,
		recipe.Description,
		recipe.Image,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
		recipe.Difficulty,
		recipe.Instructions,
		recipe.Tags,
		recipeID,
		userID,
	), recipe)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}

	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, name, amount, unit, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, recipeID, ing.Name, ing.Amount, ing.Unit, ing.Notes).Scan(&ing.ID)
		if err != nil {
			return fmt.Errorf("failed to create ingredient: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteRecipe permanently removes a recipe owned by the user
func (r *PostgresRecipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM recipes WHERE id = $1 AND user_id = $2
	`, recipeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateRating stores a new rating value and returns the updated recipe
func (r *PostgresRecipeRepository) UpdateRating(ctx context.Context, recipeID string, rating float64) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := scanRecipe(r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE recipes SET rating = $1, updated_at = now()
		WHERE id = $2
		RETURNING %s
	`, recipeColumns), rating, recipeID), recipe)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	return recipe, nil
}

// GetTagCounts returns every tag used by public recipes with its
// occurrence count, most used first
func (r *PostgresRecipeRepository) GetTagCounts(ctx context.Context) ([]domain.TagCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tag, COUNT(*) AS count
		FROM recipes, UNNEST(tags) AS tag
		WHERE user_id IS NULL
		GROUP BY tag
		ORDER BY count DESC, tag ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag counts: %w", err)
	}
	defer rows.Close()

	tags := []domain.TagCount{}
	for rows.Next() {
		var tc domain.TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tag count: %w", err)
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag counts: %w", err)
	}

	return tags, nil
}

// CountByUser returns how many recipes a user owns
func (r *PostgresRecipeRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recipes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}
