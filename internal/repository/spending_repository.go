package repository

import (
	"context"
	"time"

	"github.com/grocerly/grocerly/internal/domain"
)

// SpendingRepository defines operations for standalone spending records
type SpendingRepository interface {
	// GetRecords returns a user's spending records, oldest first. A nil
	// since returns the full history.
	GetRecords(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error)
	CreateRecord(ctx context.Context, record *domain.SpendingRecord) error
	DeleteRecord(ctx context.Context, userID, recordID string) error
}
