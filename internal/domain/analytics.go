package domain

import (
	"time"
)

// SpendingEntry is the normalized shape shared by purchase records and
// manual spending records once merged for aggregation.
type SpendingEntry struct {
	Amount   float64
	Category string
	Date     time.Time
}

// CategoryAmount is one slice of the category breakdown, in first-occurrence
// order of the merged spending entries.
type CategoryAmount struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// DailyAmount is the spend total for one calendar date.
type DailyAmount struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SpendingSummary is the response of the spending analytics operation.
type SpendingSummary struct {
	TotalSpent        float64          `json:"totalSpent"`
	AverageDaily      float64          `json:"averageDaily"`
	CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
	DailyData         []DailyAmount    `json:"dailyData"`
	Period            string           `json:"period"`
	StartDate         time.Time        `json:"startDate"`
	EndDate           time.Time        `json:"endDate"`
}

// CategoryStat is one category's purchase aggregate, ordered by total
// spend descending.
type CategoryStat struct {
	Category   string  `json:"category"`
	TotalSpent float64 `json:"totalSpent"`
	ItemCount  int     `json:"itemCount"`
	Percentage float64 `json:"percentage"`
}

// CategoryAnalytics is the response of the category analytics operation.
type CategoryAnalytics struct {
	Categories []CategoryStat `json:"categories"`
	TotalSpent float64        `json:"totalSpent"`
	Period     string         `json:"period"`
}

// MonthlyTrend is one month's spend compared against the fixed monthly
// budget (the sum of all category limits, repeated for every month).
type MonthlyTrend struct {
	Month      string  `json:"month"`
	Spent      float64 `json:"spent"`
	Budget     float64 `json:"budget"`
	Percentage float64 `json:"percentage"`
}

// TrendAnalytics is the response of the monthly trend operation, oldest
// month first.
type TrendAnalytics struct {
	Trends      []MonthlyTrend `json:"trends"`
	TotalMonths int            `json:"totalMonths"`
}

// TopPricedItem is one entry of the by-price ranking.
type TopPricedItem struct {
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// FrequentItem is one entry of the by-frequency ranking.
type FrequentItem struct {
	Name       string  `json:"name"`
	Frequency  int     `json:"frequency"`
	TotalSpent float64 `json:"totalSpent"`
}

// TopItems is the response of the top-items operation.
type TopItems struct {
	TopByPrice     []TopPricedItem `json:"topByPrice"`
	TopByFrequency []FrequentItem  `json:"topByFrequency"`
}
