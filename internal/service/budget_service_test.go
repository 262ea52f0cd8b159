package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

func TestCreateCategoryAssignsOwner(t *testing.T) {
	var created *domain.BudgetCategory
	repo := &mockBudgetRepo{
		CreateCategoryFunc: func(ctx context.Context, category *domain.BudgetCategory) error {
			created = category
			return nil
		},
	}
	svc := NewBudgetService(repo, &mockSpendingRepo{})

	category, err := svc.CreateCategory(context.Background(), "u1", &domain.BudgetCategory{Name: "Groceries", Limit: 300})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "u1", category.UserID)
}

func TestUpdateCategoryAppliesPatch(t *testing.T) {
	var updated *domain.BudgetCategory
	repo := &mockBudgetRepo{
		GetCategoryFunc: func(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
			return &domain.BudgetCategory{ID: categoryID, UserID: userID, Name: "Groceries", Limit: 300, Spent: 50}, nil
		},
		UpdateCategoryFunc: func(ctx context.Context, userID, categoryID string, category *domain.BudgetCategory) error {
			updated = category
			return nil
		},
	}
	svc := NewBudgetService(repo, &mockSpendingRepo{})

	limit := 400.0
	category, err := svc.UpdateCategory(context.Background(), "u1", "c1", CategoryPatch{Limit: &limit})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "Groceries", category.Name)
	assert.InDelta(t, 400, category.Limit, 0.001)
	assert.InDelta(t, 50, category.Spent, 0.001)
}

func TestUpdateCategoryMissing(t *testing.T) {
	repo := &mockBudgetRepo{
		GetCategoryFunc: func(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewBudgetService(repo, &mockSpendingRepo{})

	_, err := svc.UpdateCategory(context.Background(), "u1", "missing", CategoryPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateSpentAddsDelta(t *testing.T) {
	var written float64
	repo := &mockBudgetRepo{
		GetCategoryFunc: func(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
			return &domain.BudgetCategory{ID: categoryID, Spent: 80}, nil
		},
		UpdateSpentFunc: func(ctx context.Context, userID, categoryID string, spent float64) (*domain.BudgetCategory, error) {
			written = spent
			return &domain.BudgetCategory{ID: categoryID, Spent: spent}, nil
		},
	}
	svc := NewBudgetService(repo, &mockSpendingRepo{})

	category, err := svc.UpdateSpent(context.Background(), "u1", "c1", 25)
	require.NoError(t, err)
	assert.InDelta(t, 105, written, 0.001)
	assert.InDelta(t, 105, category.Spent, 0.001)
}

func TestUpdateSpentClampsAtZero(t *testing.T) {
	var written float64
	repo := &mockBudgetRepo{
		GetCategoryFunc: func(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
			return &domain.BudgetCategory{ID: categoryID, Spent: 30}, nil
		},
		UpdateSpentFunc: func(ctx context.Context, userID, categoryID string, spent float64) (*domain.BudgetCategory, error) {
			written = spent
			return &domain.BudgetCategory{ID: categoryID, Spent: spent}, nil
		},
	}
	svc := NewBudgetService(repo, &mockSpendingRepo{})

	_, err := svc.UpdateSpent(context.Background(), "u1", "c1", -100)
	require.NoError(t, err)
	assert.InDelta(t, 0, written, 0.001)
}

func TestGetSummaryRollsUpCategories(t *testing.T) {
	repo := &mockBudgetRepo{
		GetCategoriesFunc: func(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
			return []domain.BudgetCategory{
				{ID: "c1", Name: "Groceries", Limit: 300, Spent: 120},
				{ID: "c2", Name: "Household", Limit: 100, Spent: 120},
			}, nil
		},
	}
	svc := NewBudgetService(repo, &mockSpendingRepo{})

	summary, err := svc.GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.InDelta(t, 240, summary.TotalSpent, 0.001)
	assert.InDelta(t, 400, summary.TotalLimit, 0.001)
	assert.InDelta(t, 160, summary.Remaining, 0.001)
	assert.InDelta(t, 60, summary.Percentage, 0.001)
	assert.False(t, summary.IsOverBudget)

	require.Len(t, summary.CategoryBreakdown, 2)
	overspent := summary.CategoryBreakdown[1]
	assert.InDelta(t, 120, overspent.Percentage, 0.001)
	assert.InDelta(t, -20, overspent.Remaining, 0.001)
	assert.True(t, overspent.IsOverLimit)
}

func TestCreateSpendingRecordSetsOwner(t *testing.T) {
	var created *domain.SpendingRecord
	spending := &mockSpendingRepo{
		CreateRecordFunc: func(ctx context.Context, record *domain.SpendingRecord) error {
			created = record
			return nil
		},
	}
	svc := NewBudgetService(&mockBudgetRepo{}, spending)

	record, err := svc.CreateSpendingRecord(context.Background(), "u1", 42.5, "Groceries")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "u1", created.UserID)
	assert.InDelta(t, 42.5, record.Amount, 0.001)
	assert.Equal(t, "Groceries", record.Category)
}
