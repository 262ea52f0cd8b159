package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// PreferencesPatch carries the fields of a partial preferences update.
// Nil fields are left unchanged; nested groups replace the stored group.
type PreferencesPatch struct {
	Theme         *string
	Language      *string
	Currency      *string
	Notifications *domain.NotificationPreferences
	Privacy       *domain.PrivacyPreferences
}

// UserService handles user statistics, preferences and notifications
type UserService interface {
	GetStats(ctx context.Context, userID string) (*domain.UserStats, error)

	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
	UpdatePreferences(ctx context.Context, userID string, patch PreferencesPatch) (*domain.Preferences, error)

	GetNotifications(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]domain.Notification, int, int, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}

type userService struct {
	userRepo         repository.UserRepository
	shoppingRepo     repository.ShoppingRepository
	budgetRepo       repository.BudgetRepository
	spendingRepo     repository.SpendingRepository
	recipeRepo       repository.RecipeRepository
	notificationRepo repository.NotificationRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	shoppingRepo repository.ShoppingRepository,
	budgetRepo repository.BudgetRepository,
	spendingRepo repository.SpendingRepository,
	recipeRepo repository.RecipeRepository,
	notificationRepo repository.NotificationRepository,
) UserService {
	return &userService{
		userRepo:         userRepo,
		shoppingRepo:     shoppingRepo,
		budgetRepo:       budgetRepo,
		spendingRepo:     spendingRepo,
		recipeRepo:       recipeRepo,
		notificationRepo: notificationRepo,
	}
}

// GetStats aggregates the user's activity across shopping lists, budget,
// recipes and spending records. The four reads run concurrently.
func (s *userService) GetStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var (
		shopping   *repository.ShoppingStats
		categories []domain.BudgetCategory
		records    []domain.SpendingRecord
		recipes    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shopping, err = s.shoppingRepo.GetStats(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.budgetRepo.GetCategories(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.spendingRepo.GetRecords(gctx, userID, nil)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = s.recipeRepo.CountByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	stats := &domain.UserStats{
		Shopping: domain.ShoppingActivity{
			Lists:          shopping.Lists,
			TotalItems:     shopping.TotalItems,
			CompletedItems: shopping.CompletedItems,
		},
		Recipes: domain.RecipeActivity{UserRecipes: recipes},
	}
	if shopping.TotalItems > 0 {
		stats.Shopping.CompletionRate = float64(shopping.CompletedItems) / float64(shopping.TotalItems) * 100
	}

	for _, c := range categories {
		stats.Budget.TotalBudget += c.Limit
		stats.Budget.TotalSpent += c.Spent
	}
	stats.Budget.Remaining = stats.Budget.TotalBudget - stats.Budget.TotalSpent
	if stats.Budget.TotalBudget > 0 {
		stats.Budget.BudgetUsage = stats.Budget.TotalSpent / stats.Budget.TotalBudget * 100
	}

	for _, r := range records {
		stats.Spending.TotalSpending += r.Amount
	}
	stats.Spending.RecordCount = len(records)

	return stats, nil
}

// GetPreferences returns the user's settings, falling back to defaults
// for accounts that never saved any
func (s *userService) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	return s.userRepo.GetPreferences(ctx, userID)
}

// UpdatePreferences applies a partial settings update and returns the result
func (s *userService) UpdatePreferences(ctx context.Context, userID string, patch PreferencesPatch) (*domain.Preferences, error) {
	prefs, err := s.userRepo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Theme != nil {
		prefs.Theme = *patch.Theme
	}
	if patch.Language != nil {
		prefs.Language = *patch.Language
	}
	if patch.Currency != nil {
		prefs.Currency = *patch.Currency
	}
	if patch.Notifications != nil {
		prefs.Notifications = *patch.Notifications
	}
	if patch.Privacy != nil {
		prefs.Privacy = *patch.Privacy
	}

	if err := s.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return prefs, nil
}

// GetNotifications returns a page of notifications with the total match
// count and the user's unread count
func (s *userService) GetNotifications(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]domain.Notification, int, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.notificationRepo.GetNotifications(ctx, userID, limit, offset, unreadOnly)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}

	return notifications, total, unread, nil
}

// MarkNotificationRead flags a notification as read
func (s *userService) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// MarkAllNotificationsRead flags every unread notification as read
func (s *userService) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// DeleteNotification permanently removes a notification
func (s *userService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.DeleteNotification(ctx, userID, notificationID)
}
