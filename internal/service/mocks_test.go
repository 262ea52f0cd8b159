package service

import (
	"context"
	"time"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// mockShoppingRepo is a mock implementation of repository.ShoppingRepository.
type mockShoppingRepo struct {
	GetListsFunc       func(ctx context.Context, userID string) ([]domain.ShoppingList, error)
	CreateListFunc     func(ctx context.Context, userID, name string) (*domain.ShoppingList, error)
	GetListFunc        func(ctx context.Context, userID, listID string) (*domain.ShoppingList, error)
	RenameListFunc     func(ctx context.Context, userID, listID, name string) (*domain.ShoppingList, error)
	DeleteListFunc     func(ctx context.Context, userID, listID string) error
	AddItemFunc        func(ctx context.Context, userID, listID string, item *domain.ShoppingItem) error
	GetItemFunc        func(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error)
	UpdateItemFunc     func(ctx context.Context, userID, itemID string, item *domain.ShoppingItem) error
	DeleteItemFunc     func(ctx context.Context, userID, itemID string) error
	ToggleItemFunc     func(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error)
	ClearCompletedFunc func(ctx context.Context, userID, listID string) error
	GetPurchasesFunc   func(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error)
	GetStatsFunc       func(ctx context.Context, userID string) (*repository.ShoppingStats, error)
}

func (m *mockShoppingRepo) GetLists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	if m.GetListsFunc != nil {
		return m.GetListsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockShoppingRepo) CreateList(ctx context.Context, userID, name string) (*domain.ShoppingList, error) {
	if m.CreateListFunc != nil {
		return m.CreateListFunc(ctx, userID, name)
	}
	return nil, nil
}

func (m *mockShoppingRepo) GetList(ctx context.Context, userID, listID string) (*domain.ShoppingList, error) {
	if m.GetListFunc != nil {
		return m.GetListFunc(ctx, userID, listID)
	}
	return nil, nil
}

func (m *mockShoppingRepo) RenameList(ctx context.Context, userID, listID, name string) (*domain.ShoppingList, error) {
	if m.RenameListFunc != nil {
		return m.RenameListFunc(ctx, userID, listID, name)
	}
	return nil, nil
}

func (m *mockShoppingRepo) DeleteList(ctx context.Context, userID, listID string) error {
	if m.DeleteListFunc != nil {
		return m.DeleteListFunc(ctx, userID, listID)
	}
	return nil
}

func (m *mockShoppingRepo) AddItem(ctx context.Context, userID, listID string, item *domain.ShoppingItem) error {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, userID, listID, item)
	}
	return nil
}

func (m *mockShoppingRepo) GetItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, userID, itemID)
	}
	return nil, nil
}

func (m *mockShoppingRepo) UpdateItem(ctx context.Context, userID, itemID string, item *domain.ShoppingItem) error {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, userID, itemID, item)
	}
	return nil
}

func (m *mockShoppingRepo) DeleteItem(ctx context.Context, userID, itemID string) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, userID, itemID)
	}
	return nil
}

func (m *mockShoppingRepo) ToggleItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error) {
	if m.ToggleItemFunc != nil {
		return m.ToggleItemFunc(ctx, userID, itemID)
	}
	return nil, nil
}

func (m *mockShoppingRepo) ClearCompleted(ctx context.Context, userID, listID string) error {
	if m.ClearCompletedFunc != nil {
		return m.ClearCompletedFunc(ctx, userID, listID)
	}
	return nil
}

func (m *mockShoppingRepo) GetPurchases(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error) {
	if m.GetPurchasesFunc != nil {
		return m.GetPurchasesFunc(ctx, userID, since)
	}
	return nil, nil
}

func (m *mockShoppingRepo) GetStats(ctx context.Context, userID string) (*repository.ShoppingStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, userID)
	}
	return &repository.ShoppingStats{}, nil
}

// mockSpendingRepo is a mock implementation of repository.SpendingRepository.
type mockSpendingRepo struct {
	GetRecordsFunc   func(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error)
	CreateRecordFunc func(ctx context.Context, record *domain.SpendingRecord) error
	DeleteRecordFunc func(ctx context.Context, userID, recordID string) error
}

func (m *mockSpendingRepo) GetRecords(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error) {
	if m.GetRecordsFunc != nil {
		return m.GetRecordsFunc(ctx, userID, since)
	}
	return nil, nil
}

func (m *mockSpendingRepo) CreateRecord(ctx context.Context, record *domain.SpendingRecord) error {
	if m.CreateRecordFunc != nil {
		return m.CreateRecordFunc(ctx, record)
	}
	return nil
}

func (m *mockSpendingRepo) DeleteRecord(ctx context.Context, userID, recordID string) error {
	if m.DeleteRecordFunc != nil {
		return m.DeleteRecordFunc(ctx, userID, recordID)
	}
	return nil
}

// mockBudgetRepo is a mock implementation of repository.BudgetRepository.
type mockBudgetRepo struct {
	GetCategoriesFunc  func(ctx context.Context, userID string) ([]domain.BudgetCategory, error)
	CreateCategoryFunc func(ctx context.Context, category *domain.BudgetCategory) error
	GetCategoryFunc    func(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error)
	UpdateCategoryFunc func(ctx context.Context, userID, categoryID string, category *domain.BudgetCategory) error
	DeleteCategoryFunc func(ctx context.Context, userID, categoryID string) error
	UpdateSpentFunc    func(ctx context.Context, userID, categoryID string, spent float64) (*domain.BudgetCategory, error)
	ResetSpentFunc     func(ctx context.Context, userID string) error
}

func (m *mockBudgetRepo) GetCategories(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockBudgetRepo) CreateCategory(ctx context.Context, category *domain.BudgetCategory) error {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockBudgetRepo) GetCategory(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(ctx, userID, categoryID)
	}
	return nil, nil
}

func (m *mockBudgetRepo) UpdateCategory(ctx context.Context, userID, categoryID string, category *domain.BudgetCategory) error {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, userID, categoryID, category)
	}
	return nil
}

func (m *mockBudgetRepo) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, userID, categoryID)
	}
	return nil
}

func (m *mockBudgetRepo) UpdateSpent(ctx context.Context, userID, categoryID string, spent float64) (*domain.BudgetCategory, error) {
	if m.UpdateSpentFunc != nil {
		return m.UpdateSpentFunc(ctx, userID, categoryID, spent)
	}
	return nil, nil
}

func (m *mockBudgetRepo) ResetSpent(ctx context.Context, userID string) error {
	if m.ResetSpentFunc != nil {
		return m.ResetSpentFunc(ctx, userID)
	}
	return nil
}

// mockRecipeRepo is a mock implementation of repository.RecipeRepository.
type mockRecipeRepo struct {
	GetRecipesFunc   func(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error)
	GetFeaturedFunc  func(ctx context.Context, limit int) ([]domain.Recipe, error)
	GetRecipeFunc    func(ctx context.Context, recipeID string) (*domain.Recipe, error)
	CreateRecipeFunc func(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipeFunc func(ctx context.Context, userID, recipeID string, recipe *domain.Recipe) error
	DeleteRecipeFunc func(ctx context.Context, userID, recipeID string) error
	UpdateRatingFunc func(ctx context.Context, recipeID string, rating float64) (*domain.Recipe, error)
	GetTagCountsFunc func(ctx context.Context) ([]domain.TagCount, error)
	CountByUserFunc  func(ctx context.Context, userID string) (int, error)
}

func (m *mockRecipeRepo) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error) {
	if m.GetRecipesFunc != nil {
		return m.GetRecipesFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRecipeRepo) GetFeatured(ctx context.Context, limit int) ([]domain.Recipe, error) {
	if m.GetFeaturedFunc != nil {
		return m.GetFeaturedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockRecipeRepo) GetRecipe(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	if m.GetRecipeFunc != nil {
		return m.GetRecipeFunc(ctx, recipeID)
	}
	return nil, nil
}

func (m *mockRecipeRepo) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if m.CreateRecipeFunc != nil {
		return m.CreateRecipeFunc(ctx, recipe)
	}
	return nil
}

func (m *mockRecipeRepo) UpdateRecipe(ctx context.Context, userID, recipeID string, recipe *domain.Recipe) error {
	if m.UpdateRecipeFunc != nil {
		return m.UpdateRecipeFunc(ctx, userID, recipeID, recipe)
	}
	return nil
}

func (m *mockRecipeRepo) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	if m.DeleteRecipeFunc != nil {
		return m.DeleteRecipeFunc(ctx, userID, recipeID)
	}
	return nil
}

func (m *mockRecipeRepo) UpdateRating(ctx context.Context, recipeID string, rating float64) (*domain.Recipe, error) {
	if m.UpdateRatingFunc != nil {
		return m.UpdateRatingFunc(ctx, recipeID, rating)
	}
	return nil, nil
}

func (m *mockRecipeRepo) GetTagCounts(ctx context.Context) ([]domain.TagCount, error) {
	if m.GetTagCountsFunc != nil {
		return m.GetTagCountsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRecipeRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}
