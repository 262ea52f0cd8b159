package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grocerly/grocerly/internal/domain"
)

// PostgresSpendingRepository implements SpendingRepository using PostgreSQL
type PostgresSpendingRepository struct {
	db *pgxpool.Pool
}

// NewPostgresSpendingRepository creates a new PostgreSQL spending repository
func NewPostgresSpendingRepository(db *pgxpool.Pool) SpendingRepository {
	return &PostgresSpendingRepository{db: db}
}

// GetRecords retrieves a user's spending records, oldest first
func (r *PostgresSpendingRepository) GetRecords(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error) {
	query := `
		SELECT id, user_id, amount, category, created_at
		FROM spending_records
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if since != nil {
		query += ` AND created_at >= $2`
		args = append(args, *since)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending records: %w", err)
	}
	defer rows.Close()

	records := []domain.SpendingRecord{}
	for rows.Next() {
		var record domain.SpendingRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Amount, &record.Category, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spending record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spending records: %w", err)
	}

	return records, nil
}

// CreateRecord inserts a new spending record
func (r *PostgresSpendingRepository) CreateRecord(ctx context.Context, record *domain.SpendingRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO spending_records (user_id, amount, category)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, record.UserID, record.Amount, record.Category).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create spending record: %w", err)
	}

	return nil
}

// DeleteRecord permanently removes a spending record
func (r *PostgresSpendingRepository) DeleteRecord(ctx context.Context, userID, recordID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM spending_records WHERE id = $1 AND user_id = $2
	`, recordID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete spending record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
