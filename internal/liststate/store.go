package liststate

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grocerly/grocerly/internal/domain"
)

// Filter selects which items a view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// SortField selects the sort key of a view.
type SortField string

const (
	SortByName      SortField = "name"
	SortByCategory  SortField = "category"
	SortByPriority  SortField = "priority"
	SortByCreatedAt SortField = "createdAt"
)

// SortOrder selects the sort direction of a view.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Patch carries the fields of a partial item update. Nil fields are left
// unchanged.
type Patch struct {
	Name        *string
	Category    *string
	Quantity    *int
	Unit        *string
	Price       *float64
	IsCompleted *bool
	Priority    *domain.Priority
	Notes       *string
}

// Stats summarizes the items independent of filter and search.
type Stats struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Active     int     `json:"active"`
	TotalSpent float64 `json:"totalSpent"`
}

// Store holds shopping items together with the view state that derives
// the visible ordering. All mutations are synchronous and operate on the
// in-memory collection.
type Store struct {
	Items       []domain.ShoppingItem `json:"items"`
	Filter      Filter                `json:"filter"`
	SearchQuery string                `json:"searchQuery"`
	SortBy      SortField             `json:"sortBy"`
	SortOrder   SortOrder             `json:"sortOrder"`
}

// NewStore creates an empty store with the default view state
func NewStore() *Store {
	return &Store{
		Items:     []domain.ShoppingItem{},
		Filter:    FilterAll,
		SortBy:    SortByName,
		SortOrder: OrderAsc,
	}
}

// AddItem creates a new item from the input and prepends it
func (s *Store) AddItem(input domain.ShoppingItem) *domain.ShoppingItem {
	now := time.Now()
	item := input
	item.ID = uuid.NewString()
	item.IsCompleted = false
	item.CompletedAt = nil
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Priority == "" {
		item.Priority = domain.PriorityMedium
	}

	s.Items = append([]domain.ShoppingItem{item}, s.Items...)
	return &s.Items[0]
}

// BulkAdd creates items for every input and prepends the batch, keeping
// the batch's own order
func (s *Store) BulkAdd(inputs []domain.ShoppingItem) {
	if len(inputs) == 0 {
		return
	}

	now := time.Now()
	batch := make([]domain.ShoppingItem, 0, len(inputs))
	for _, input := range inputs {
		item := input
		item.ID = uuid.NewString()
		item.IsCompleted = false
		item.CompletedAt = nil
		item.CreatedAt = now
		item.UpdatedAt = now
		if item.Priority == "" {
			item.Priority = domain.PriorityMedium
		}
		batch = append(batch, item)
	}

	s.Items = append(batch, s.Items...)
}

// UpdateItem applies a partial update to the item with the given id.
// Completing stamps CompletedAt; un-completing clears it. Returns false
// when the id is unknown.
func (s *Store) UpdateItem(id string, patch Patch) bool {
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		item := &s.Items[i]

		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.Quantity != nil {
			item.Quantity = *patch.Quantity
		}
		if patch.Unit != nil {
			item.Unit = *patch.Unit
		}
		if patch.Price != nil {
			item.Price = patch.Price
		}
		if patch.Priority != nil {
			item.Priority = *patch.Priority
		}
		if patch.Notes != nil {
			item.Notes = *patch.Notes
		}
		if patch.IsCompleted != nil && *patch.IsCompleted != item.IsCompleted {
			item.IsCompleted = *patch.IsCompleted
			if item.IsCompleted {
				now := time.Now()
				item.CompletedAt = &now
			} else {
				item.CompletedAt = nil
			}
		}
		item.UpdatedAt = time.Now()
		return true
	}
	return false
}

// DeleteItem removes the item with the given id. Returns false when the
// id is unknown.
func (s *Store) DeleteItem(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleItem flips the completion state of the item with the given id.
// Returns false when the id is unknown.
func (s *Store) ToggleItem(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		item := &s.Items[i]
		item.IsCompleted = !item.IsCompleted
		if item.IsCompleted {
			now := time.Now()
			item.CompletedAt = &now
		} else {
			item.CompletedAt = nil
		}
		item.UpdatedAt = time.Now()
		return true
	}
	return false
}

// ClearCompleted removes every completed item
func (s *Store) ClearCompleted() {
	remaining := s.Items[:0]
	for _, item := range s.Items {
		if !item.IsCompleted {
			remaining = append(remaining, item)
		}
	}
	s.Items = remaining
}

// Duplicate clones the item with the given id, appends " (Copy)" to the
// name, resets completion and prepends the clone. Returns false when the
// id is unknown.
func (s *Store) Duplicate(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		now := time.Now()
		clone := s.Items[i]
		clone.ID = uuid.NewString()
		clone.Name = clone.Name + " (Copy)"
		clone.IsCompleted = false
		clone.CompletedAt = nil
		clone.CreatedAt = now
		clone.UpdatedAt = now

		s.Items = append([]domain.ShoppingItem{clone}, s.Items...)
		return true
	}
	return false
}

// FilteredAndSortedItems derives the visible ordering: status filter,
// then case-insensitive substring search over name, category and notes,
// then a stable sort on the selected key. Equal keys preserve input order.
func (s *Store) FilteredAndSortedItems() []domain.ShoppingItem {
	filtered := make([]domain.ShoppingItem, 0, len(s.Items))
	for _, item := range s.Items {
		switch s.Filter {
		case FilterActive:
			if item.IsCompleted {
				continue
			}
		case FilterCompleted:
			if !item.IsCompleted {
				continue
			}
		}
		if !s.matchesSearch(item) {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		less, equal := s.compare(filtered[i], filtered[j])
		if equal {
			return false
		}
		if s.SortOrder == OrderDesc {
			return !less
		}
		return less
	})

	return filtered
}

// matchesSearch reports whether the item matches the search query. An
// empty query matches everything.
func (s *Store) matchesSearch(item domain.ShoppingItem) bool {
	query := strings.ToLower(strings.TrimSpace(s.SearchQuery))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), query) ||
		strings.Contains(strings.ToLower(item.Category), query) ||
		strings.Contains(strings.ToLower(item.Notes), query)
}

// compare orders two items on the selected sort key in ascending
// direction, also reporting key equality so descending sorts stay stable
func (s *Store) compare(a, b domain.ShoppingItem) (less, equal bool) {
	switch s.SortBy {
	case SortByCategory:
		ca, cb := strings.ToLower(a.Category), strings.ToLower(b.Category)
		return ca < cb, ca == cb
	case SortByPriority:
		ra, rb := a.Priority.Rank(), b.Priority.Rank()
		return ra < rb, ra == rb
	case SortByCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	default:
		na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		return na < nb, na == nb
	}
}

// Stats summarizes all items regardless of the view state. Completed
// items without a price contribute nothing to totalSpent.
func (s *Store) Stats() Stats {
	stats := Stats{Total: len(s.Items)}
	for _, item := range s.Items {
		if item.IsCompleted {
			stats.Completed++
			if item.Price != nil {
				stats.TotalSpent += *item.Price
			}
		}
	}
	stats.Active = stats.Total - stats.Completed
	return stats
}

// Snapshot serializes the full store state
func (s *Store) Snapshot() ([]byte, error) {
	return json.Marshal(s)
}

// Restore replaces the store state from a snapshot
func (s *Store) Restore(data []byte) error {
	var restored Store
	if err := json.Unmarshal(data, &restored); err != nil {
		return err
	}
	if restored.Items == nil {
		restored.Items = []domain.ShoppingItem{}
	}
	if restored.Filter == "" {
		restored.Filter = FilterAll
	}
	if restored.SortBy == "" {
		restored.SortBy = SortByName
	}
	if restored.SortOrder == "" {
		restored.SortOrder = OrderAsc
	}
	*s = restored
	return nil
}
