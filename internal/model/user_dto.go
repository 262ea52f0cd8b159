package model

import "github.com/grocerly/grocerly/internal/domain"

// UpdateProfileRequest represents a partial update to the user's profile
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// ChangePasswordRequest carries the current and replacement passwords
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// DeleteAccountRequest confirms account deletion with the user's password
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// UpdatePreferencesRequest represents a partial update to user preferences.
// Nested preference groups replace the stored group when present.
type UpdatePreferencesRequest struct {
	Theme         *string                         `json:"theme"`
	Language      *string                         `json:"language"`
	Currency      *string                         `json:"currency"`
	Notifications *domain.NotificationPreferences `json:"notifications"`
	Privacy       *domain.PrivacyPreferences      `json:"privacy"`
}

// NotificationListResponse pairs a page of notifications with counts
type NotificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int                   `json:"total"`
	UnreadCount   int                   `json:"unreadCount"`
}
