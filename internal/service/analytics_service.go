package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// DefaultTrendMonths is how many months the trend report covers when the
// caller does not ask for a specific count.
const DefaultTrendMonths = 12

// DefaultTopItemsLimit is the ranking size when the caller does not ask
// for a specific limit.
const DefaultTopItemsLimit = 10

// AnalyticsService computes spending reports over a user's purchase
// history and manual spending records
type AnalyticsService interface {
	SpendingSummary(ctx context.Context, userID, period string) (*domain.SpendingSummary, error)
	CategorySummary(ctx context.Context, userID, period string) (*domain.CategoryAnalytics, error)
	MonthlyTrends(ctx context.Context, userID string, months int) (*domain.TrendAnalytics, error)
	TopItems(ctx context.Context, userID string, limit int) (*domain.TopItems, error)
}

type analyticsService struct {
	shoppingRepo repository.ShoppingRepository
	spendingRepo repository.SpendingRepository
	budgetRepo   repository.BudgetRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(shoppingRepo repository.ShoppingRepository, spendingRepo repository.SpendingRepository, budgetRepo repository.BudgetRepository) AnalyticsService {
	return &analyticsService{
		shoppingRepo: shoppingRepo,
		spendingRepo: spendingRepo,
		budgetRepo:   budgetRepo,
	}
}

// periodDays maps a period selector to its day count. Unknown selectors
// fall back to 30 days.
func periodDays(period string) int {
	switch period {
	case "7d":
		return 7
	case "90d":
		return 90
	case "1y":
		return 365
	default:
		return 30
	}
}

// SpendingSummary merges completed purchases and manual spending records
// inside the period window into totals, a category breakdown and a
// per-day series
func (s *analyticsService) SpendingSummary(ctx context.Context, userID, period string) (*domain.SpendingSummary, error) {
	days := periodDays(period)
	now := time.Now()
	start := now.AddDate(0, 0, -days)

	// The two reads run concurrently and are not snapshot-isolated;
	// a write landing between them can appear in one but not the other.
	var purchases []domain.PurchaseRecord
	var records []domain.SpendingRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		purchases, err = s.shoppingRepo.GetPurchases(gctx, userID, &start)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.spendingRepo.GetRecords(gctx, userID, &start)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load spending data: %w", err)
	}

	entries := make([]domain.SpendingEntry, 0, len(purchases)+len(records))
	for _, p := range purchases {
		entries = append(entries, domain.SpendingEntry{Amount: p.Amount, Category: p.Category, Date: p.OccurredAt})
	}
	for _, r := range records {
		entries = append(entries, domain.SpendingEntry{Amount: r.Amount, Category: r.Category, Date: r.CreatedAt})
	}

	var totalSpent float64
	for _, e := range entries {
		totalSpent += e.Amount
	}

	elapsed := int(math.Ceil(now.Sub(start).Hours() / 24))
	if elapsed < 1 {
		elapsed = 1
	}
	averageDaily := totalSpent / float64(elapsed)

	// Category breakdown keeps first-occurrence order of the merged entries
	categoryTotals := map[string]float64{}
	categoryOrder := []string{}
	for _, e := range entries {
		if _, seen := categoryTotals[e.Category]; !seen {
			categoryOrder = append(categoryOrder, e.Category)
		}
		categoryTotals[e.Category] += e.Amount
	}

	breakdown := make([]domain.CategoryAmount, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		amount := categoryTotals[category]
		var percentage float64
		if totalSpent > 0 {
			percentage = amount / totalSpent * 100
		}
		breakdown = append(breakdown, domain.CategoryAmount{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	dailyTotals := map[string]float64{}
	for _, e := range entries {
		dailyTotals[e.Date.Format("2006-01-02")] += e.Amount
	}
	dailyData := make([]domain.DailyAmount, 0, len(dailyTotals))
	for date, amount := range dailyTotals {
		dailyData = append(dailyData, domain.DailyAmount{Date: date, Amount: amount})
	}
	sort.Slice(dailyData, func(i, j int) bool {
		return dailyData[i].Date < dailyData[j].Date
	})

	return &domain.SpendingSummary{
		TotalSpent:        totalSpent,
		AverageDaily:      averageDaily,
		CategoryBreakdown: breakdown,
		DailyData:         dailyData,
		Period:            period,
		StartDate:         start,
		EndDate:           now,
	}, nil
}

// CategorySummary aggregates completed purchases by category for the
// period window, largest spend first
func (s *analyticsService) CategorySummary(ctx context.Context, userID, period string) (*domain.CategoryAnalytics, error) {
	days := periodDays(period)
	start := time.Now().AddDate(0, 0, -days)

	purchases, err := s.shoppingRepo.GetPurchases(ctx, userID, &start)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	totals := map[string]float64{}
	counts := map[string]int{}
	order := []string{}
	var totalSpent float64
	for _, p := range purchases {
		if _, seen := totals[p.Category]; !seen {
			order = append(order, p.Category)
		}
		totals[p.Category] += p.Amount
		counts[p.Category]++
		totalSpent += p.Amount
	}

	categories := make([]domain.CategoryStat, 0, len(order))
	for _, category := range order {
		var percentage float64
		if totalSpent > 0 {
			percentage = totals[category] / totalSpent * 100
		}
		categories = append(categories, domain.CategoryStat{
			Category:   category,
			TotalSpent: totals[category],
			ItemCount:  counts[category],
			Percentage: percentage,
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].TotalSpent > categories[j].TotalSpent
	})

	return &domain.CategoryAnalytics{
		Categories: categories,
		TotalSpent: totalSpent,
		Period:     period,
	}, nil
}

// MonthlyTrends reports per-month purchase spend against the fixed
// monthly budget for the most recent months, oldest first
func (s *analyticsService) MonthlyTrends(ctx context.Context, userID string, months int) (*domain.TrendAnalytics, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}

	purchases, err := s.shoppingRepo.GetPurchases(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}
	categories, err := s.budgetRepo.GetCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget categories: %w", err)
	}

	var budget float64
	for _, c := range categories {
		budget += c.Limit
	}

	// Walk from the first of the current month so late days of the month
	// cannot overflow into a neighboring month and duplicate or skip one.
	now := time.Now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	trends := make([]domain.MonthlyTrend, 0, months)
	for i := 0; i < months; i++ {
		month := anchor.AddDate(0, -i, 0)
		var spent float64
		for _, p := range purchases {
			if p.OccurredAt.Month() == month.Month() && p.OccurredAt.Year() == month.Year() {
				spent += p.Amount
			}
		}
		var percentage float64
		if budget > 0 {
			percentage = spent / budget * 100
		}
		// Prepend so the slice ends up oldest first
		trends = append([]domain.MonthlyTrend{{
			Month:      month.Format("Jan"),
			Spent:      spent,
			Budget:     budget,
			Percentage: percentage,
		}}, trends...)
	}

	return &domain.TrendAnalytics{
		Trends:      trends,
		TotalMonths: months,
	}, nil
}

// TopItems ranks the user's whole purchase history by unit price and by
// purchase frequency
func (s *analyticsService) TopItems(ctx context.Context, userID string, limit int) (*domain.TopItems, error) {
	if limit <= 0 {
		limit = DefaultTopItemsLimit
	}

	purchases, err := s.shoppingRepo.GetPurchases(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchases: %w", err)
	}

	byPrice := make([]domain.TopPricedItem, 0, len(purchases))
	for _, p := range purchases {
		occurredAt := p.OccurredAt
		byPrice = append(byPrice, domain.TopPricedItem{
			Name:        p.ItemName,
			Price:       p.Amount,
			Category:    p.Category,
			CompletedAt: &occurredAt,
		})
	}
	sort.SliceStable(byPrice, func(i, j int) bool {
		if byPrice[i].Price != byPrice[j].Price {
			return byPrice[i].Price > byPrice[j].Price
		}
		ti, tj := byPrice[i].CompletedAt, byPrice[j].CompletedAt
		if !ti.Equal(*tj) {
			return ti.After(*tj)
		}
		return byPrice[i].Name < byPrice[j].Name
	})
	if len(byPrice) > limit {
		byPrice = byPrice[:limit]
	}

	freqCounts := map[string]int{}
	freqTotals := map[string]float64{}
	freqOrder := []string{}
	for _, p := range purchases {
		if _, seen := freqCounts[p.ItemName]; !seen {
			freqOrder = append(freqOrder, p.ItemName)
		}
		freqCounts[p.ItemName]++
		freqTotals[p.ItemName] += p.Amount
	}
	byFrequency := make([]domain.FrequentItem, 0, len(freqOrder))
	for _, name := range freqOrder {
		byFrequency = append(byFrequency, domain.FrequentItem{
			Name:       name,
			Frequency:  freqCounts[name],
			TotalSpent: freqTotals[name],
		})
	}
	sort.SliceStable(byFrequency, func(i, j int) bool {
		if byFrequency[i].Frequency != byFrequency[j].Frequency {
			return byFrequency[i].Frequency > byFrequency[j].Frequency
		}
		if byFrequency[i].TotalSpent != byFrequency[j].TotalSpent {
			return byFrequency[i].TotalSpent > byFrequency[j].TotalSpent
		}
		return byFrequency[i].Name < byFrequency[j].Name
	})
	if len(byFrequency) > limit {
		byFrequency = byFrequency[:limit]
	}

	return &domain.TopItems{
		TopByPrice:     byPrice,
		TopByFrequency: byFrequency,
	}, nil
}
