package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/grocerly/internal/domain"
)

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func newAnalyticsFixture(purchases []domain.PurchaseRecord, records []domain.SpendingRecord) AnalyticsService {
	shopping := &mockShoppingRepo{
		GetPurchasesFunc: func(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error) {
			if since == nil {
				return purchases, nil
			}
			var filtered []domain.PurchaseRecord
			for _, p := range purchases {
				if p.OccurredAt.After(*since) {
					filtered = append(filtered, p)
				}
			}
			return filtered, nil
		},
	}
	spending := &mockSpendingRepo{
		GetRecordsFunc: func(ctx context.Context, userID string, since *time.Time) ([]domain.SpendingRecord, error) {
			if since == nil {
				return records, nil
			}
			var filtered []domain.SpendingRecord
			for _, r := range records {
				if r.CreatedAt.After(*since) {
					filtered = append(filtered, r)
				}
			}
			return filtered, nil
		},
	}
	return NewAnalyticsService(shopping, spending, &mockBudgetRepo{})
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 7, periodDays("7d"))
	assert.Equal(t, 30, periodDays("30d"))
	assert.Equal(t, 90, periodDays("90d"))
	assert.Equal(t, 365, periodDays("1y"))
	assert.Equal(t, 30, periodDays("bogus"))
}

func TestSpendingSummaryMergesPurchasesAndRecords(t *testing.T) {
	purchases := []domain.PurchaseRecord{
		{Amount: 20, Category: "Dairy", ItemName: "Milk", OccurredAt: daysAgo(2)},
		{Amount: 10, Category: "Bakery", ItemName: "Bread", OccurredAt: daysAgo(1)},
	}
	records := []domain.SpendingRecord{
		{ID: "r1", Amount: 30, Category: "Dairy", CreatedAt: daysAgo(1)},
	}
	svc := newAnalyticsFixture(purchases, records)

	summary, err := svc.SpendingSummary(context.Background(), "u1", "30d")
	require.NoError(t, err)

	assert.InDelta(t, 60, summary.TotalSpent, 0.001)
	assert.InDelta(t, 2, summary.AverageDaily, 0.1)
	assert.Equal(t, "30d", summary.Period)

	// Breakdown keeps first-occurrence order, purchases before records.
	require.Len(t, summary.CategoryBreakdown, 2)
	assert.Equal(t, "Dairy", summary.CategoryBreakdown[0].Category)
	assert.InDelta(t, 50, summary.CategoryBreakdown[0].Amount, 0.001)
	assert.InDelta(t, 50.0/60*100, summary.CategoryBreakdown[0].Percentage, 0.001)
	assert.Equal(t, "Bakery", summary.CategoryBreakdown[1].Category)

	// Daily series is ascending by date and sums same-day entries.
	require.Len(t, summary.DailyData, 2)
	assert.Equal(t, daysAgo(2).Format("2006-01-02"), summary.DailyData[0].Date)
	assert.InDelta(t, 20, summary.DailyData[0].Amount, 0.001)
	assert.InDelta(t, 40, summary.DailyData[1].Amount, 0.001)
}

func TestSpendingSummaryEmpty(t *testing.T) {
	svc := newAnalyticsFixture(nil, nil)

	summary, err := svc.SpendingSummary(context.Background(), "u1", "7d")
	require.NoError(t, err)

	assert.Zero(t, summary.TotalSpent)
	assert.Zero(t, summary.AverageDaily)
	assert.Empty(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.DailyData)
}

func TestSpendingSummaryPropagatesErrors(t *testing.T) {
	shopping := &mockShoppingRepo{
		GetPurchasesFunc: func(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAnalyticsService(shopping, &mockSpendingRepo{}, &mockBudgetRepo{})

	_, err := svc.SpendingSummary(context.Background(), "u1", "30d")
	assert.Error(t, err)
}

func TestCategorySummarySortedBySpendDesc(t *testing.T) {
	purchases := []domain.PurchaseRecord{
		{Amount: 10, Category: "Bakery", ItemName: "Bread", OccurredAt: daysAgo(3)},
		{Amount: 25, Category: "Dairy", ItemName: "Cheese", OccurredAt: daysAgo(2)},
		{Amount: 15, Category: "Dairy", ItemName: "Milk", OccurredAt: daysAgo(1)},
	}
	svc := newAnalyticsFixture(purchases, nil)

	analytics, err := svc.CategorySummary(context.Background(), "u1", "30d")
	require.NoError(t, err)

	assert.InDelta(t, 50, analytics.TotalSpent, 0.001)
	require.Len(t, analytics.Categories, 2)
	assert.Equal(t, "Dairy", analytics.Categories[0].Category)
	assert.InDelta(t, 40, analytics.Categories[0].TotalSpent, 0.001)
	assert.Equal(t, 2, analytics.Categories[0].ItemCount)
	assert.InDelta(t, 80, analytics.Categories[0].Percentage, 0.001)
	assert.Equal(t, "Bakery", analytics.Categories[1].Category)
}

func TestCategorySummaryIgnoresSpendingRecords(t *testing.T) {
	records := []domain.SpendingRecord{
		{ID: "r1", Amount: 100, Category: "Dairy", CreatedAt: daysAgo(1)},
	}
	svc := newAnalyticsFixture(nil, records)

	analytics, err := svc.CategorySummary(context.Background(), "u1", "30d")
	require.NoError(t, err)
	assert.Zero(t, analytics.TotalSpent)
	assert.Empty(t, analytics.Categories)
}

func TestMonthlyTrendsOldestFirstWithConstantBudget(t *testing.T) {
	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)
	purchases := []domain.PurchaseRecord{
		{Amount: 50, Category: "Dairy", ItemName: "Milk", OccurredAt: thisMonth},
		{Amount: 30, Category: "Dairy", ItemName: "Milk", OccurredAt: lastMonth},
	}
	shopping := &mockShoppingRepo{
		GetPurchasesFunc: func(ctx context.Context, userID string, since *time.Time) ([]domain.PurchaseRecord, error) {
			return purchases, nil
		},
	}
	budget := &mockBudgetRepo{
		GetCategoriesFunc: func(ctx context.Context, userID string) ([]domain.BudgetCategory, error) {
			return []domain.BudgetCategory{
				{ID: "c1", Limit: 150},
				{ID: "c2", Limit: 50},
			}, nil
		},
	}
	svc := NewAnalyticsService(shopping, &mockSpendingRepo{}, budget)

	analytics, err := svc.MonthlyTrends(context.Background(), "u1", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.TotalMonths)
	require.Len(t, analytics.Trends, 3)

	// Oldest month first, current month last.
	last := analytics.Trends[2]
	assert.Equal(t, now.Format("Jan"), last.Month)
	assert.InDelta(t, 50, last.Spent, 0.001)
	assert.InDelta(t, 25, last.Percentage, 0.001)

	previous := analytics.Trends[1]
	assert.InDelta(t, 30, previous.Spent, 0.001)

	for _, trend := range analytics.Trends {
		assert.InDelta(t, 200, trend.Budget, 0.001)
	}
}

func TestMonthlyTrendsWalksConsecutiveMonths(t *testing.T) {
	svc := newAnalyticsFixture(nil, nil)

	analytics, err := svc.MonthlyTrends(context.Background(), "u1", 4)
	require.NoError(t, err)
	require.Len(t, analytics.Trends, 4)

	// Each entry is one calendar month, with no repeats or gaps, even when
	// the current day does not exist in every month (e.g. the 31st).
	now := time.Now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i, trend := range analytics.Trends {
		expected := anchor.AddDate(0, -(len(analytics.Trends) - 1 - i), 0)
		assert.Equal(t, expected.Format("Jan"), trend.Month)
	}
}

func TestMonthlyTrendsDefaultsAndZeroBudget(t *testing.T) {
	svc := newAnalyticsFixture([]domain.PurchaseRecord{
		{Amount: 40, Category: "Dairy", ItemName: "Milk", OccurredAt: time.Now()},
	}, nil)

	analytics, err := svc.MonthlyTrends(context.Background(), "u1", 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultTrendMonths, analytics.TotalMonths)
	require.Len(t, analytics.Trends, DefaultTrendMonths)

	current := analytics.Trends[DefaultTrendMonths-1]
	assert.InDelta(t, 40, current.Spent, 0.001)
	assert.Zero(t, current.Budget)
	assert.Zero(t, current.Percentage)
}

func TestTopItemsByPriceTieBreaks(t *testing.T) {
	purchases := []domain.PurchaseRecord{
		{Amount: 5, Category: "Dairy", ItemName: "Yogurt", OccurredAt: daysAgo(5)},
		{Amount: 10, Category: "Dairy", ItemName: "Cheese", OccurredAt: daysAgo(3)},
		{Amount: 10, Category: "Bakery", ItemName: "Cake", OccurredAt: daysAgo(1)},
	}
	svc := newAnalyticsFixture(purchases, nil)

	top, err := svc.TopItems(context.Background(), "u1", 0)
	require.NoError(t, err)

	require.Len(t, top.TopByPrice, 3)
	// Price ties rank the more recent purchase first.
	assert.Equal(t, "Cake", top.TopByPrice[0].Name)
	assert.Equal(t, "Cheese", top.TopByPrice[1].Name)
	assert.Equal(t, "Yogurt", top.TopByPrice[2].Name)
}

func TestTopItemsByFrequencyTieBreaks(t *testing.T) {
	purchases := []domain.PurchaseRecord{
		{Amount: 3, Category: "Bakery", ItemName: "Bread", OccurredAt: daysAgo(6)},
		{Amount: 3, Category: "Bakery", ItemName: "Bread", OccurredAt: daysAgo(4)},
		{Amount: 5, Category: "Dairy", ItemName: "Milk", OccurredAt: daysAgo(5)},
		{Amount: 5, Category: "Dairy", ItemName: "Milk", OccurredAt: daysAgo(2)},
		{Amount: 2, Category: "Produce", ItemName: "Apples", OccurredAt: daysAgo(1)},
	}
	svc := newAnalyticsFixture(purchases, nil)

	top, err := svc.TopItems(context.Background(), "u1", 0)
	require.NoError(t, err)

	require.Len(t, top.TopByFrequency, 3)
	// Equal frequency ranks the larger total spend first.
	assert.Equal(t, "Milk", top.TopByFrequency[0].Name)
	assert.Equal(t, 2, top.TopByFrequency[0].Frequency)
	assert.InDelta(t, 10, top.TopByFrequency[0].TotalSpent, 0.001)
	assert.Equal(t, "Bread", top.TopByFrequency[1].Name)
	assert.Equal(t, "Apples", top.TopByFrequency[2].Name)
}

func TestTopItemsAppliesLimit(t *testing.T) {
	var purchases []domain.PurchaseRecord
	for i := 0; i < 15; i++ {
		purchases = append(purchases, domain.PurchaseRecord{
			Amount:     float64(i + 1),
			Category:   "Misc",
			ItemName:   string(rune('A' + i)),
			OccurredAt: daysAgo(i + 1),
		})
	}
	svc := newAnalyticsFixture(purchases, nil)

	top, err := svc.TopItems(context.Background(), "u1", 5)
	require.NoError(t, err)
	assert.Len(t, top.TopByPrice, 5)
	assert.Len(t, top.TopByFrequency, 5)
}
