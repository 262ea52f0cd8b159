package domain

import (
	"time"
)

// BudgetCategory is a user-defined spending bucket. Spent is set by the
// user (or by client-side mutations) and is intentionally not reconciled
// against purchase or spending records; the budget and analytics
// subsystems track spending independently.
type BudgetCategory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Limit     float64   `json:"limit"`
	Spent     float64   `json:"spent"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// CategoryView is the derived state of a budget category relative to its
// own limit. Percentage is not clamped, so an overspent category reads
// above 100.
type CategoryView struct {
	BudgetCategory
	Percentage  float64 `json:"percentage"`
	Remaining   float64 `json:"remaining"`
	IsOverLimit bool    `json:"isOverLimit"`
}

// ComputeCategoryView derives the per-category figures. This is the single
// implementation shared by the budget summary endpoint and the client-side
// selectors, so the two paths cannot drift apart.
func ComputeCategoryView(c BudgetCategory) CategoryView {
	view := CategoryView{
		BudgetCategory: c,
		Remaining:      c.Limit - c.Spent,
		IsOverLimit:    c.Spent > c.Limit,
	}
	if c.Limit > 0 {
		view.Percentage = c.Spent / c.Limit * 100
	}
	return view
}

// BudgetSummary aggregates a user's categories against their combined limit.
type BudgetSummary struct {
	TotalSpent        float64        `json:"totalSpent"`
	TotalLimit        float64        `json:"totalLimit"`
	Remaining         float64        `json:"remaining"`
	Percentage        float64        `json:"percentage"`
	IsOverBudget      bool           `json:"isOverBudget"`
	CategoryBreakdown []CategoryView `json:"categoryBreakdown"`
}

// SummarizeBudget computes the roll-up over all categories. The summary
// percentage is rounded to two decimals; per-category views are not.
func SummarizeBudget(categories []BudgetCategory) BudgetSummary {
	summary := BudgetSummary{CategoryBreakdown: make([]CategoryView, 0, len(categories))}
	for _, c := range categories {
		summary.TotalSpent += c.Spent
		summary.TotalLimit += c.Limit
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, ComputeCategoryView(c))
	}
	summary.Remaining = summary.TotalLimit - summary.TotalSpent
	if summary.TotalLimit > 0 {
		summary.Percentage = roundTwo(summary.TotalSpent / summary.TotalLimit * 100)
	}
	summary.IsOverBudget = summary.TotalSpent > summary.TotalLimit
	return summary
}

func roundTwo(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}
