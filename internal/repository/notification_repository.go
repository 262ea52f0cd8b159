package repository

import (
	"context"

	"github.com/grocerly/grocerly/internal/domain"
)

// NotificationRepository defines operations for user notifications
type NotificationRepository interface {
	GetNotifications(ctx context.Context, userID string, limit, offset int, unreadOnly bool) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
