package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grocerly/grocerly/internal/domain"
)

// PostgresBudgetRepository implements BudgetRepository using PostgreSQL
type PostgresBudgetRepository struct {
	db *pgxpool.Pool
}

// NewPostgresBudgetRepository creates a new PostgreSQL budget repository
func NewPostgresBudgetRepository(db *pgxpool.Pool) BudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

func scanBudgetCategory(row pgx.Row, c *domain.BudgetCategory) error {
	return row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Limit,
		&c.Spent,
		&c.Color,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// GetCategories retrieves all budget categories for a user, newest first
func (r *PostgresBudgetRepository) GetCategories(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, spend_limit, spent, color, created_at, updated_at
		FROM budget_categories
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.BudgetCategory{}
	for rows.Next() {
		var c domain.BudgetCategory
		if err := scanBudgetCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a new budget category
func (r *PostgresBudgetRepository) CreateCategory(ctx context.Context, category *domain.BudgetCategory) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO budget_categories (user_id, name, spend_limit, spent, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		category.UserID,
		category.Name,
		category.Limit,
		category.Spent,
		category.Color,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget category: %w", err)
	}

	return nil
}

// GetCategory retrieves a single budget category scoped to its owner
func (r *PostgresBudgetRepository) GetCategory(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
	c := &domain.BudgetCategory{}
	err := scanBudgetCategory(r.db.QueryRow(ctx, `
		SELECT id, user_id, name, spend_limit, spent, color, created_at, updated_at
		FROM budget_categories
		WHERE id = $1 AND user_id = $2
	`, categoryID, userID), c)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget category: %w", err)
	}

	return c, nil
}

// UpdateCategory replaces a category's editable fields
func (r *PostgresBudgetRepository) UpdateCategory(ctx context.Context, userID, categoryID string, category *domain.BudgetCategory) error {
	err := scanBudgetCategory(r.db.QueryRow(ctx, `
		UPDATE budget_categories
		SET name = $1, spend_limit = $2, spent = $3, color = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, name, spend_limit, spent, color, created_at, updated_at
	`,
		category.Name,
		category.Limit,
		category.Spent,
		category.Color,
		categoryID,
		userID,
	), category)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update budget category: %w", err)
	}

	return nil
}

// DeleteCategory permanently removes a budget category
func (r *PostgresBudgetRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM budget_categories WHERE id = $1 AND user_id = $2
	`, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateSpent sets a category's spent amount
func (r *PostgresBudgetRepository) UpdateSpent(ctx context.Context, userID, categoryID string, spent float64) (*domain.BudgetCategory, error) {
	c := &domain.BudgetCategory{}
	err := scanBudgetCategory(r.db.QueryRow(ctx, `
		UPDATE budget_categories
		SET spent = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, spend_limit, spent, color, created_at, updated_at
	`, spent, categoryID, userID), c)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update spent amount: %w", err)
	}

	return c, nil
}

// ResetSpent zeroes the spent amount on every category owned by the user
func (r *PostgresBudgetRepository) ResetSpent(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE budget_categories SET spent = 0, updated_at = now() WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to reset budget categories: %w", err)
	}

	return nil
}
