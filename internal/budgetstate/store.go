package budgetstate

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/grocerly/grocerly/internal/domain"
)

// Patch carries the fields of a partial category update. Nil fields are
// left unchanged.
type Patch struct {
	Name  *string
	Limit *float64
	Spent *float64
	Color *string
}

// Store holds the monthly budget limit and its categories. All mutations
// are synchronous and operate on the in-memory collection.
type Store struct {
	MonthlyLimit float64                 `json:"monthlyLimit"`
	Categories   []domain.BudgetCategory `json:"categories"`
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{Categories: []domain.BudgetCategory{}}
}

// SetMonthlyLimit replaces the overall monthly limit
func (s *Store) SetMonthlyLimit(limit float64) {
	s.MonthlyLimit = limit
}

// AddCategory creates a category from the input and appends it
func (s *Store) AddCategory(input domain.BudgetCategory) *domain.BudgetCategory {
	now := time.Now()
	category := input
	category.ID = uuid.NewString()
	category.CreatedAt = now
	category.UpdatedAt = now

	s.Categories = append(s.Categories, category)
	return &s.Categories[len(s.Categories)-1]
}

// UpdateCategory applies a partial update to the category with the given
// id. Returns false when the id is unknown.
func (s *Store) UpdateCategory(id string, patch Patch) bool {
	for i := range s.Categories {
		if s.Categories[i].ID != id {
			continue
		}
		category := &s.Categories[i]

		if patch.Name != nil {
			category.Name = *patch.Name
		}
		if patch.Limit != nil {
			category.Limit = *patch.Limit
		}
		if patch.Spent != nil {
			category.Spent = *patch.Spent
		}
		if patch.Color != nil {
			category.Color = *patch.Color
		}
		category.UpdatedAt = time.Now()
		return true
	}
	return false
}

// DeleteCategory removes the category with the given id. Returns false
// when the id is unknown.
func (s *Store) DeleteCategory(id string) bool {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateSpent adjusts a category's spent amount by a signed delta,
// clamping the result at zero. Returns false when the id is unknown.
func (s *Store) UpdateSpent(id string, amount float64) bool {
	for i := range s.Categories {
		if s.Categories[i].ID != id {
			continue
		}
		category := &s.Categories[i]
		category.Spent += amount
		if category.Spent < 0 {
			category.Spent = 0
		}
		category.UpdatedAt = time.Now()
		return true
	}
	return false
}

// Reset zeroes the spent amount of every category, leaving limits intact
func (s *Store) Reset() {
	now := time.Now()
	for i := range s.Categories {
		s.Categories[i].Spent = 0
		s.Categories[i].UpdatedAt = now
	}
}

// TotalSpent sums the spent amount over all categories
func (s *Store) TotalSpent() float64 {
	var total float64
	for _, c := range s.Categories {
		total += c.Spent
	}
	return total
}

// TotalLimit sums the limit over all categories
func (s *Store) TotalLimit() float64 {
	var total float64
	for _, c := range s.Categories {
		total += c.Limit
	}
	return total
}

// Progress is the share of the monthly limit already spent, as a
// percentage clamped to 100. A zero limit reads as zero.
func (s *Store) Progress() float64 {
	if s.MonthlyLimit <= 0 {
		return 0
	}
	progress := s.TotalSpent() / s.MonthlyLimit * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// IsOverBudget reports whether total spending exceeds the monthly limit
func (s *Store) IsOverBudget() bool {
	return s.TotalSpent() > s.MonthlyLimit
}

// CategoryViews derives the per-category figures relative to each
// category's own limit
func (s *Store) CategoryViews() []domain.CategoryView {
	views := make([]domain.CategoryView, 0, len(s.Categories))
	for _, c := range s.Categories {
		views = append(views, domain.ComputeCategoryView(c))
	}
	return views
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
	if restored.Categories == nil {
		restored.Categories = []domain.BudgetCategory{}
	}
	*s = restored
	return nil
}
