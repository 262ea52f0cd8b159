package liststate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/grocerly/internal/domain"
)

func seedStore() *Store {
	s := NewStore()
	s.AddItem(domain.ShoppingItem{Name: "Milk", Category: "Dairy", Quantity: 1, Unit: "l"})
	s.AddItem(domain.ShoppingItem{Name: "Bread", Category: "Bakery", Quantity: 2, Unit: "pcs", Priority: domain.PriorityHigh})
	s.AddItem(domain.ShoppingItem{Name: "Apples", Category: "Produce", Quantity: 6, Unit: "pcs", Priority: domain.PriorityLow})
	return s
}

func TestAddItemPrependsAndDefaults(t *testing.T) {
	s := NewStore()
	first := s.AddItem(domain.ShoppingItem{Name: "Milk"})
	second := s.AddItem(domain.ShoppingItem{Name: "Bread"})

	require.Len(t, s.Items, 2)
	assert.Equal(t, "Bread", s.Items[0].Name)
	assert.Equal(t, "Milk", s.Items[1].Name)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.PriorityMedium, first.Priority)
	assert.False(t, first.IsCompleted)
	assert.Nil(t, first.CompletedAt)
}

func TestBulkAddKeepsBatchOrder(t *testing.T) {
	s := NewStore()
	s.AddItem(domain.ShoppingItem{Name: "Existing"})
	s.BulkAdd([]domain.ShoppingItem{
		{Name: "One"},
		{Name: "Two"},
	})

	require.Len(t, s.Items, 3)
	assert.Equal(t, "One", s.Items[0].Name)
	assert.Equal(t, "Two", s.Items[1].Name)
	assert.Equal(t, "Existing", s.Items[2].Name)
}

func TestToggleItemStampsAndClearsCompletedAt(t *testing.T) {
	s := NewStore()
	item := s.AddItem(domain.ShoppingItem{Name: "Milk"})

	require.True(t, s.ToggleItem(item.ID))
	assert.True(t, s.Items[0].IsCompleted)
	require.NotNil(t, s.Items[0].CompletedAt)

	require.True(t, s.ToggleItem(item.ID))
	assert.False(t, s.Items[0].IsCompleted)
	assert.Nil(t, s.Items[0].CompletedAt)
}

func TestToggleItemUnknownID(t *testing.T) {
	s := NewStore()
	assert.False(t, s.ToggleItem("missing"))
}

func TestUpdateItemPartial(t *testing.T) {
	s := NewStore()
	item := s.AddItem(domain.ShoppingItem{Name: "Milk", Quantity: 1})

	qty := 3
	done := true
	require.True(t, s.UpdateItem(item.ID, Patch{Quantity: &qty, IsCompleted: &done}))

	assert.Equal(t, "Milk", s.Items[0].Name)
	assert.Equal(t, 3, s.Items[0].Quantity)
	assert.True(t, s.Items[0].IsCompleted)
	assert.NotNil(t, s.Items[0].CompletedAt)
}

func TestDeleteItem(t *testing.T) {
	s := seedStore()
	id := s.Items[1].ID

	require.True(t, s.DeleteItem(id))
	assert.Len(t, s.Items, 2)
	assert.False(t, s.DeleteItem(id))
}

func TestClearCompleted(t *testing.T) {
	s := seedStore()
	s.ToggleItem(s.Items[0].ID)
	s.ToggleItem(s.Items[2].ID)

	s.ClearCompleted()

	require.Len(t, s.Items, 1)
	assert.False(t, s.Items[0].IsCompleted)
}

func TestDuplicateAppendsCopySuffix(t *testing.T) {
	s := NewStore()
	item := s.AddItem(domain.ShoppingItem{Name: "Milk", Category: "Dairy"})
	s.ToggleItem(item.ID)

	require.True(t, s.Duplicate(item.ID))

	require.Len(t, s.Items, 2)
	clone := s.Items[0]
	assert.Equal(t, "Milk (Copy)", clone.Name)
	assert.Equal(t, "Dairy", clone.Category)
	assert.NotEqual(t, item.ID, clone.ID)
	assert.False(t, clone.IsCompleted)
	assert.Nil(t, clone.CompletedAt)
}

func TestFilteredAndSortedItemsFilter(t *testing.T) {
	s := seedStore()
	s.ToggleItem(s.Items[0].ID)

	s.Filter = FilterActive
	active := s.FilteredAndSortedItems()
	assert.Len(t, active, 2)

	s.Filter = FilterCompleted
	completed := s.FilteredAndSortedItems()
	require.Len(t, completed, 1)
	assert.True(t, completed[0].IsCompleted)
}

func TestFilteredAndSortedItemsSearch(t *testing.T) {
	s := seedStore()
	s.UpdateItem(s.Items[0].ID, Patch{Notes: strptr("organic farm stand")})

	s.SearchQuery = "ORGANIC"
	matched := s.FilteredAndSortedItems()
	require.Len(t, matched, 1)
	assert.Equal(t, "Apples", matched[0].Name)

	s.SearchQuery = "dairy"
	matched = s.FilteredAndSortedItems()
	require.Len(t, matched, 1)
	assert.Equal(t, "Milk", matched[0].Name)
}

func TestFilteredAndSortedItemsSortByName(t *testing.T) {
	s := seedStore()
	sorted := s.FilteredAndSortedItems()
	require.Len(t, sorted, 3)
	assert.Equal(t, "Apples", sorted[0].Name)
	assert.Equal(t, "Bread", sorted[1].Name)
	assert.Equal(t, "Milk", sorted[2].Name)

	s.SortOrder = OrderDesc
	sorted = s.FilteredAndSortedItems()
	assert.Equal(t, "Milk", sorted[0].Name)
	assert.Equal(t, "Apples", sorted[2].Name)
}

func TestFilteredAndSortedItemsSortByPriority(t *testing.T) {
	s := seedStore()
	s.SortBy = SortByPriority
	s.SortOrder = OrderDesc

	sorted := s.FilteredAndSortedItems()
	require.Len(t, sorted, 3)
	assert.Equal(t, domain.PriorityHigh, sorted[0].Priority)
	assert.Equal(t, domain.PriorityLow, sorted[2].Priority)
}

func TestFilteredAndSortedItemsSortByCreatedAt(t *testing.T) {
	s := NewStore()
	s.AddItem(domain.ShoppingItem{Name: "Older"})
	s.AddItem(domain.ShoppingItem{Name: "Newer"})
	s.Items[1].CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Items[0].CreatedAt = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	s.SortBy = SortByCreatedAt
	sorted := s.FilteredAndSortedItems()
	require.Len(t, sorted, 2)
	assert.Equal(t, "Older", sorted[0].Name)
	assert.Equal(t, "Newer", sorted[1].Name)

	s.SortOrder = OrderDesc
	sorted = s.FilteredAndSortedItems()
	assert.Equal(t, "Newer", sorted[0].Name)
	assert.Equal(t, "Older", sorted[1].Name)
}

func TestDescendingSortIsStableOnEqualKeys(t *testing.T) {
	s := NewStore()
	s.AddItem(domain.ShoppingItem{Name: "First", Category: "Same"})
	s.AddItem(domain.ShoppingItem{Name: "Second", Category: "Same"})
	s.AddItem(domain.ShoppingItem{Name: "Third", Category: "Same"})

	s.SortBy = SortByCategory
	s.SortOrder = OrderDesc

	sorted := s.FilteredAndSortedItems()
	require.Len(t, sorted, 3)
	// Equal keys keep the store ordering, newest first.
	assert.Equal(t, "Third", sorted[0].Name)
	assert.Equal(t, "Second", sorted[1].Name)
	assert.Equal(t, "First", sorted[2].Name)
}

func TestFilteredAndSortedItemsIsRepeatable(t *testing.T) {
	s := seedStore()
	s.SortBy = SortByPriority
	s.SortOrder = OrderDesc

	first := s.FilteredAndSortedItems()
	second := s.FilteredAndSortedItems()
	assert.Equal(t, first, second)
	// Deriving the view does not reorder the underlying items.
	assert.Equal(t, "Apples", s.Items[0].Name)
}

func TestStats(t *testing.T) {
	s := seedStore()
	price := 4.50
	s.UpdateItem(s.Items[0].ID, Patch{Price: &price})
	s.ToggleItem(s.Items[0].ID)
	s.ToggleItem(s.Items[1].ID)

	stats := s.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Active)
	assert.InDelta(t, 4.50, stats.TotalSpent, 0.001)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := seedStore()
	s.Filter = FilterActive
	s.SearchQuery = "milk"
	s.SortBy = SortByCreatedAt
	s.SortOrder = OrderDesc

	data, err := s.Snapshot()
	require.NoError(t, err)

	restored := NewStore()
	require.NoError(t, restored.Restore(data))

	assert.Equal(t, s.Filter, restored.Filter)
	assert.Equal(t, s.SearchQuery, restored.SearchQuery)
	assert.Equal(t, s.SortBy, restored.SortBy)
	assert.Equal(t, s.SortOrder, restored.SortOrder)
	require.Len(t, restored.Items, 3)
	assert.Equal(t, s.Items[0].ID, restored.Items[0].ID)
}

func TestRestoreEmptySnapshotGetsDefaults(t *testing.T) {
	restored := NewStore()
	require.NoError(t, restored.Restore([]byte(`{}`)))

	assert.NotNil(t, restored.Items)
	assert.Equal(t, FilterAll, restored.Filter)
	assert.Equal(t, SortByName, restored.SortBy)
	assert.Equal(t, OrderAsc, restored.SortOrder)
}

func TestRestoreRejectsGarbage(t *testing.T) {
	restored := NewStore()
	assert.Error(t, restored.Restore([]byte("not json")))
}

func strptr(s string) *string { return &s }
