package budgetstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/grocerly/internal/domain"
)

func seedStore() *Store {
	s := NewStore()
	s.SetMonthlyLimit(500)
	s.AddCategory(domain.BudgetCategory{Name: "Groceries", Limit: 300, Spent: 120})
	s.AddCategory(domain.BudgetCategory{Name: "Household", Limit: 100, Spent: 30})
	return s
}

func TestAddCategoryAssignsID(t *testing.T) {
	s := NewStore()
	added := s.AddCategory(domain.BudgetCategory{Name: "Groceries", Limit: 300, Color: "#4CAF50"})

	require.Len(t, s.Categories, 1)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Groceries", added.Name)
	assert.Equal(t, "#4CAF50", added.Color)
	assert.False(t, added.CreatedAt.IsZero())
}

func TestUpdateCategoryPartial(t *testing.T) {
	s := seedStore()
	id := s.Categories[0].ID

	limit := 350.0
	require.True(t, s.UpdateCategory(id, Patch{Limit: &limit}))

	assert.Equal(t, "Groceries", s.Categories[0].Name)
	assert.InDelta(t, 350, s.Categories[0].Limit, 0.001)
	assert.InDelta(t, 120, s.Categories[0].Spent, 0.001)

	assert.False(t, s.UpdateCategory("missing", Patch{Limit: &limit}))
}

func TestDeleteCategory(t *testing.T) {
	s := seedStore()
	id := s.Categories[0].ID

	require.True(t, s.DeleteCategory(id))
	assert.Len(t, s.Categories, 1)
	assert.False(t, s.DeleteCategory(id))
}

func TestUpdateSpentClampsAtZero(t *testing.T) {
	s := seedStore()
	id := s.Categories[1].ID

	require.True(t, s.UpdateSpent(id, 25))
	assert.InDelta(t, 55, s.Categories[1].Spent, 0.001)

	require.True(t, s.UpdateSpent(id, -100))
	assert.InDelta(t, 0, s.Categories[1].Spent, 0.001)
}

func TestResetZeroesSpentOnly(t *testing.T) {
	s := seedStore()
	s.Reset()

	for _, c := range s.Categories {
		assert.InDelta(t, 0, c.Spent, 0.001)
	}
	assert.InDelta(t, 300, s.Categories[0].Limit, 0.001)
	assert.InDelta(t, 500, s.MonthlyLimit, 0.001)
}

func TestTotals(t *testing.T) {
	s := seedStore()
	assert.InDelta(t, 150, s.TotalSpent(), 0.001)
	assert.InDelta(t, 400, s.TotalLimit(), 0.001)
}

func TestProgressClampedTo100(t *testing.T) {
	s := seedStore()
	assert.InDelta(t, 30, s.Progress(), 0.001)

	s.SetMonthlyLimit(100)
	assert.InDelta(t, 100, s.Progress(), 0.001)

	s.SetMonthlyLimit(0)
	assert.InDelta(t, 0, s.Progress(), 0.001)
}

func TestIsOverBudget(t *testing.T) {
	s := seedStore()
	assert.False(t, s.IsOverBudget())

	s.SetMonthlyLimit(100)
	assert.True(t, s.IsOverBudget())
}

func TestCategoryViewsOverspent(t *testing.T) {
	s := NewStore()
	s.AddCategory(domain.BudgetCategory{Name: "Groceries", Limit: 100, Spent: 120})

	views := s.CategoryViews()
	require.Len(t, views, 1)
	assert.InDelta(t, 120, views[0].Percentage, 0.001)
	assert.InDelta(t, -20, views[0].Remaining, 0.001)
	assert.True(t, views[0].IsOverLimit)
}

func TestCategoryViewsZeroLimit(t *testing.T) {
	s := NewStore()
	s.AddCategory(domain.BudgetCategory{Name: "Misc", Limit: 0, Spent: 10})

	views := s.CategoryViews()
	require.Len(t, views, 1)
	assert.InDelta(t, 0, views[0].Percentage, 0.001)
	assert.True(t, views[0].IsOverLimit)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := seedStore()

	data, err := s.Snapshot()
	require.NoError(t, err)

	restored := NewStore()
	require.NoError(t, restored.Restore(data))

	assert.InDelta(t, s.MonthlyLimit, restored.MonthlyLimit, 0.001)
	require.Len(t, restored.Categories, 2)
	assert.Equal(t, s.Categories[0].ID, restored.Categories[0].ID)
	assert.InDelta(t, s.Categories[0].Spent, restored.Categories[0].Spent, 0.001)
}

func TestRestoreEmptySnapshot(t *testing.T) {
	restored := NewStore()
	require.NoError(t, restored.Restore([]byte(`{}`)))
	assert.NotNil(t, restored.Categories)
}
