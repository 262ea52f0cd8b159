package domain

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NotificationPreferences controls which alert types a user receives.
type NotificationPreferences struct {
	BudgetAlerts    bool `json:"budgetAlerts"`
	PriceDrops      bool `json:"priceDrops"`
	ExpiryReminders bool `json:"expiryReminders"`
	WeeklyReports   bool `json:"weeklyReports"`
}

// PrivacyPreferences controls data-sharing consent flags.
type PrivacyPreferences struct {
	ShareData bool `json:"shareData"`
	Analytics bool `json:"analytics"`
}

// Preferences is the per-user settings document.
type Preferences struct {
	Theme         string                  `json:"theme"`
	Language      string                  `json:"language"`
	Currency      string                  `json:"currency"`
	Notifications NotificationPreferences `json:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy"`
}

// ShoppingActivity summarizes a user's shopping list usage.
type ShoppingActivity struct {
	Lists          int     `json:"lists"`
	TotalItems     int     `json:"totalItems"`
	CompletedItems int     `json:"completedItems"`
	CompletionRate float64 `json:"completionRate"`
}

// BudgetPosition summarizes a user's budget standing.
type BudgetPosition struct {
	TotalBudget float64 `json:"totalBudget"`
	TotalSpent  float64 `json:"totalSpent"`
	Remaining   float64 `json:"remaining"`
	BudgetUsage float64 `json:"budgetUsage"`
}

// RecipeActivity summarizes a user's recipe contributions.
type RecipeActivity struct {
	UserRecipes int `json:"userRecipes"`
}

// SpendingActivity summarizes a user's manual spending records.
type SpendingActivity struct {
	TotalSpending float64 `json:"totalSpending"`
	RecordCount   int     `json:"recordCount"`
}

// UserStats is the response of the user statistics operation.
type UserStats struct {
	Shopping ShoppingActivity `json:"shopping"`
	Budget   BudgetPosition   `json:"budget"`
	Recipes  RecipeActivity   `json:"recipes"`
	Spending SpendingActivity `json:"spending"`
}

// DefaultPreferences returns the settings applied to accounts that have
// never saved preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    "system",
		Language: "en",
		Currency: "USD",
		Notifications: NotificationPreferences{
			BudgetAlerts:    true,
			PriceDrops:      true,
			ExpiryReminders: true,
			WeeklyReports:   false,
		},
		Privacy: PrivacyPreferences{
			ShareData: false,
			Analytics: true,
		},
	}
}
