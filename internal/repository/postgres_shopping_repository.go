package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grocerly/grocerly/internal/domain"
)

// PostgresShoppingRepository implements ShoppingRepository using PostgreSQL
type PostgresShoppingRepository struct {
	db *pgxpool.Pool
}

// NewPostgresShoppingRepository creates a new PostgreSQL shopping repository
func NewPostgresShoppingRepository(db *pgxpool.Pool) ShoppingRepository {
	return &PostgresShoppingRepository{db: db}
}

const shoppingItemColumns = `
	id, name, category, quantity, unit, price, is_completed, priority, notes,
	created_at, updated_at, completed_at
`

func scanShoppingItem(row pgx.Row, item *domain.ShoppingItem) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&item.Unit,
		&item.Price,
		&item.IsCompleted,
		&item.Priority,
		&item.Notes,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.CompletedAt,
	)
}

// GetLists retrieves all shopping lists for a user, newest first, with
// their items ordered newest first
func (r *PostgresShoppingRepository) GetLists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM shopping_lists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.ShoppingList{}
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(&list.ID, &list.UserID, &list.Name, &list.CreatedAt, &list.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopping lists: %w", err)
	}

	for i := range lists {
		items, err := r.getListItems(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}

	return lists, nil
}

func (r *PostgresShoppingRepository) getListItems(ctx context.Context, listID string) ([]domain.ShoppingItem, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM shopping_items
		WHERE list_id = $1
		ORDER BY created_at DESC
	`, shoppingItemColumns), listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping items: %w", err)
	}
	defer rows.Close()

	items := []domain.ShoppingItem{}
	for rows.Next() {
		var item domain.ShoppingItem
		if err := scanShoppingItem(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopping items: %w", err)
	}

	return items, nil
}

// CreateList creates a new shopping list for a user
func (r *PostgresShoppingRepository) CreateList(ctx context.Context, userID, name string) (*domain.ShoppingList, error) {
	list := &domain.ShoppingList{UserID: userID, Name: name, Items: []domain.ShoppingItem{}}
	err := r.db.QueryRow(ctx, `
		INSERT INTO shopping_lists (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, userID, name).Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create shopping list: %w", err)
	}

	return list, nil
}

// GetList retrieves a single shopping list scoped to its owner
func (r *PostgresShoppingRepository) GetList(ctx context.Context, userID, listID string) (*domain.ShoppingList, error) {
	list := &domain.ShoppingList{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM shopping_lists
		WHERE id = $1 AND user_id = $2
	`, listID, userID).Scan(&list.ID, &list.UserID, &list.Name, &list.CreatedAt, &list.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}

	items, err := r.getListItems(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	list.Items = items

	return list, nil
}

// RenameList updates a shopping list's name
func (r *PostgresShoppingRepository) RenameList(ctx context.Context, userID, listID, name string) (*domain.ShoppingList, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE shopping_lists SET name = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
	`, name, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to rename shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetList(ctx, userID, listID)
}

// DeleteList permanently removes a shopping list and its items
func (r *PostgresShoppingRepository) DeleteList(ctx context.Context, userID, listID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM shopping_lists WHERE id = $1 AND user_id = $2
	`, listID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// AddItem inserts an item into a list owned by the user
func (r *PostgresShoppingRepository) AddItem(ctx context.Context, userID, listID string, item *domain.ShoppingItem) error {
	if _, err := r.GetListHeader(ctx, userID, listID); err != nil {
		return err
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO shopping_items (list_id, name, category, quantity, unit, price, priority, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_completed, created_at, updated_at
	`,
		listID,
		item.Name,
		item.Category,
		item.Quantity,
		item.Unit,
		item.Price,
		item.Priority,
		item.Notes,
	).Scan(&item.ID, &item.IsCompleted, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to add shopping item: %w", err)
	}

	return nil
}

// GetListHeader retrieves a list row without loading its items
func (r *PostgresShoppingRepository) GetListHeader(ctx context.Context, userID, listID string) (*domain.ShoppingList, error) {
	list := &domain.ShoppingList{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM shopping_lists
		WHERE id = $1 AND user_id = $2
	`, listID, userID).Scan(&list.ID, &list.UserID, &list.Name, &list.CreatedAt, &list.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}

	return list, nil
}

// GetItem retrieves a single item scoped through its list's owner
func (r *PostgresShoppingRepository) GetItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error) {
	item := &domain.ShoppingItem{}
	err := scanShoppingItem(r.db.QueryRow(ctx, `
		SELECT i.id, i.name, i.category, i.quantity, i.unit, i.price, i.is_completed,
		       i.priority, i.notes, i.created_at, i.updated_at, i.completed_at
		FROM shopping_items i
		WHERE i.id = $1
		  AND EXISTS (SELECT 1 FROM shopping_lists l WHERE l.id = i.list_id AND l.user_id = $2)
	`, itemID, userID), item)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}

	return item, nil
}

// UpdateItem replaces an item's editable fields. CompletedAt is set when
// the update transitions is_completed from false to true, and cleared when
// the update leaves the item uncompleted.
func (r *PostgresShoppingRepository) UpdateItem(ctx context.Context, userID, itemID string, item *domain.ShoppingItem) error {
	current, err := r.GetItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	var completedAt *time.Time
	switch {
	case item.IsCompleted && !current.IsCompleted:
		now := time.Now()
		completedAt = &now
	case item.IsCompleted && current.IsCompleted:
		completedAt = current.CompletedAt
	default:
		completedAt = nil
	}

	err = scanShoppingItem(r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE shopping_items
		SET name = $1, category = $2, quantity = $3, unit = $4, price = $5,
		    is_completed = $6, priority = $7, notes = $8, completed_at = $9,
		    updated_at = now()
		WHERE id = $10
		RETURNING %s
	`, shoppingItemColumns),
		item.Name,
		item.Category,
		item.Quantity,
		item.Unit,
		item.Price,
		item.IsCompleted,
		item.Priority,
		item.Notes,
		completedAt,
		itemID,
	), item)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}

	return nil
}

// DeleteItem permanently removes an item
func (r *PostgresShoppingRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM shopping_items i
		USING shopping_lists l
		WHERE i.id = $1 AND l.id = i.list_id AND l.user_id = $2
	`, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleItem flips an item's completion state, stamping or clearing
// completed_at accordingly
func (r *PostgresShoppingRepository) ToggleItem(ctx context.Context, userID, itemID string) (*domain.ShoppingItem, error) {
	current, err := r.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if !current.IsCompleted {
		now := time.Now()
		completedAt = &now
	}

	item := &domain.ShoppingItem{}
	err = scanShoppingItem(r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE shopping_items
		SET is_completed = $1, completed_at = $2, updated_at = now()
		WHERE id = $3
		RETURNING %s
	`, shoppingItemColumns), !current.IsCompleted, completedAt, itemID), item)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle shopping item: %w", err)
	}

	return item, nil
}

// ClearCompleted deletes every completed item on a list
func (r *PostgresShoppingRepository) ClearCompleted(ctx context.Context, userID, listID string) error {
	if _, err := r.GetListHeader(ctx, userID, listID); err != nil {
		return err
	}

	_, err := r.db.Exec(ctx, `
		DELETE FROM shopping_items WHERE list_id = $1 AND is_completed = TRUE
	`, listID)
	if err != nil {
		return fmt.Errorf("failed to clear completed items: %w", err)
	}

	return nil
}

// GetPurchases returns completed, priced items as purchase records, oldest
// completion first
func (r *PostgresShoppingRepository) GetPurchases(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error) {
	query := `
		SELECT i.price, i.category, i.name, i.completed_at
		FROM shopping_items i
		JOIN shopping_lists l ON l.id = i.list_id
		WHERE l.user_id = $1
		  AND i.is_completed = TRUE
		  AND i.price IS NOT NULL
	`
	args := []interface{}{userID}
	if since != nil {
		query += ` AND i.completed_at >= $2`
		args = append(args, *since)
	}
	query += ` ORDER BY i.completed_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}
	defer rows.Close()

	records := []domain.PurchaseRecord{}
	for rows.Next() {
		var record domain.PurchaseRecord
		if err := rows.Scan(&record.Amount, &record.Category, &record.ItemName, &record.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}

	return records, nil
}

// GetStats summarizes a user's shopping activity
func (r *PostgresShoppingRepository) GetStats(ctx context.Context, userID string) (*ShoppingStats, error) {
	stats := &ShoppingStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM shopping_lists WHERE user_id = $1),
			(SELECT COUNT(*) FROM shopping_items i JOIN shopping_lists l ON l.id = i.list_id WHERE l.user_id = $1),
			(SELECT COUNT(*) FROM shopping_items i JOIN shopping_lists l ON l.id = i.list_id WHERE l.user_id = $1 AND i.is_completed)
	`, userID).Scan(&stats.Lists, &stats.TotalItems, &stats.CompletedItems)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping stats: %w", err)
	}

	return stats, nil
}
