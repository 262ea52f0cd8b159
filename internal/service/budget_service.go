package service

import (
	"context"
	"fmt"
	"time"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// CategoryPatch carries the fields of a partial budget category update.
// Nil fields are left unchanged.
type CategoryPatch struct {
	Name  *string
	Limit *float64
	Spent *float64
	Color *string
}

// BudgetService handles budget category and spending record operations
type BudgetService interface {
	GetCategories(ctx context.Context, userID string) ([]domain.BudgetCategory, error)
	CreateCategory(ctx context.Context, userID string, category *domain.BudgetCategory) (*domain.BudgetCategory, error)
	GetCategory(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, patch CategoryPatch) (*domain.BudgetCategory, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	UpdateSpent(ctx context.Context, userID, categoryID string, amount float64) (*domain.BudgetCategory, error)
	ResetSpent(ctx context.Context, userID string) error
	GetSummary(ctx context.Context, userID string) (*domain.BudgetSummary, error)

	GetSpendingRecords(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error)
	CreateSpendingRecord(ctx context.Context, userID string, amount float64, category string) (*domain.SpendingRecord, error)
	DeleteSpendingRecord(ctx context.Context, userID, recordID string) error
}

type budgetService struct {
	budgetRepo   repository.BudgetRepository
	spendingRepo repository.SpendingRepository
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo repository.BudgetRepository, spendingRepo repository.SpendingRepository) BudgetService {
	return &budgetService{
		budgetRepo:   budgetRepo,
		spendingRepo: spendingRepo,
	}
}

// GetCategories returns the user's budget categories
func (s *budgetService) GetCategories(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
	return s.budgetRepo.GetCategories(ctx, userID)
}

// CreateCategory creates a budget category for the user
func (s *budgetService) CreateCategory(ctx context.Context, userID string, category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	category.UserID = userID
	if err := s.budgetRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory returns one of the user's budget categories
func (s *budgetService) GetCategory(ctx context.Context, userID, categoryID string) (*domain.BudgetCategory, error) {
	return s.budgetRepo.GetCategory(ctx, userID, categoryID)
}

// UpdateCategory applies a partial update to a category and returns the result
func (s *budgetService) UpdateCategory(ctx context.Context, userID, categoryID string, patch CategoryPatch) (*domain.BudgetCategory, error) {
	category, err := s.budgetRepo.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Limit != nil {
		category.Limit = *patch.Limit
	}
	if patch.Spent != nil {
		category.Spent = *patch.Spent
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}

	if err := s.budgetRepo.UpdateCategory(ctx, userID, categoryID, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory permanently removes a category
func (s *budgetService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	return s.budgetRepo.DeleteCategory(ctx, userID, categoryID)
}

// UpdateSpent adjusts a category's spent amount by a signed delta,
// clamping the result at zero
func (s *budgetService) UpdateSpent(ctx context.Context, userID, categoryID string, amount float64) (*domain.BudgetCategory, error) {
	category, err := s.budgetRepo.GetCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	spent := category.Spent + amount
	if spent < 0 {
		spent = 0
	}

	return s.budgetRepo.UpdateSpent(ctx, userID, categoryID, spent)
}

// ResetSpent zeroes the spent amount of every category, leaving limits intact
func (s *budgetService) ResetSpent(ctx context.Context, userID string) error {
	return s.budgetRepo.ResetSpent(ctx, userID)
}

// GetSummary computes the per-category views and overall budget totals
func (s *budgetService) GetSummary(ctx context.Context, userID string) (*domain.BudgetSummary, error) {
	categories, err := s.budgetRepo.GetCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeBudget(categories)
	return &summary, nil
}

// GetSpendingRecords returns the user's manual spending records, oldest first
func (s *budgetService) GetSpendingRecords(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error) {
	return s.spendingRepo.GetRecords(ctx, userID, since)
}

// CreateSpendingRecord logs a manual spending record
func (s *budgetService) CreateSpendingRecord(ctx context.Context, userID string, amount float64, category string) (*domain.SpendingRecord, error) {
	record := &domain.SpendingRecord{
		UserID:   userID,
		Amount:   amount,
		Category: category,
	}
	if err := s.spendingRepo.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteSpendingRecord permanently removes a spending record
func (s *budgetService) DeleteSpendingRecord(ctx context.Context, userID, recordID string) error {
	return s.spendingRepo.DeleteRecord(ctx, userID, recordID)
}
