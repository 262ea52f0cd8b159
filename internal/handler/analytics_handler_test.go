package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/grocerly/internal/domain"
)

// stubAnalyticsService records the arguments of the last call.
type stubAnalyticsService struct {
	lastUserID string
	lastPeriod string
	lastMonths int
	lastLimit  int
	err        error
}

func (s *stubAnalyticsService) SpendingSummary(ctx context.Context, userID, period string) (*domain.SpendingSummary, error) {
	s.lastUserID, s.lastPeriod = userID, period
	if s.err != nil {
		return nil, s.err
	}
	return &domain.SpendingSummary{TotalSpent: 60, Period: period}, nil
}

func (s *stubAnalyticsService) CategorySummary(ctx context.Context, userID, period string) (*domain.CategoryAnalytics, error) {
	s.lastUserID, s.lastPeriod = userID, period
	if s.err != nil {
		return nil, s.err
	}
	return &domain.CategoryAnalytics{TotalSpent: 50, Period: period}, nil
}

func (s *stubAnalyticsService) MonthlyTrends(ctx context.Context, userID string, months int) (*domain.TrendAnalytics, error) {
	s.lastUserID, s.lastMonths = userID, months
	if s.err != nil {
		return nil, s.err
	}
	return &domain.TrendAnalytics{TotalMonths: months}, nil
}

func (s *stubAnalyticsService) TopItems(ctx context.Context, userID string, limit int) (*domain.TopItems, error) {
	s.lastUserID, s.lastLimit = userID, limit
	if s.err != nil {
		return nil, s.err
	}
	return &domain.TopItems{}, nil
}

func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newAnalyticsTestRouter(svc *stubAnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAnalyticsHandler(svc).RegisterRoutes(router, fakeAuth("u1"))
	return router
}

func TestGetSpendingSummaryDefaultsPeriod(t *testing.T) {
	svc := &stubAnalyticsService{}
	router := newAnalyticsTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/spending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.lastUserID)
	assert.Equal(t, "30d", svc.lastPeriod)

	var body struct {
		Success bool                   `json:"success"`
		Data    domain.SpendingSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.InDelta(t, 60, body.Data.TotalSpent, 0.001)
}

func TestGetSpendingSummaryPassesPeriod(t *testing.T) {
	svc := &stubAnalyticsService{}
	router := newAnalyticsTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/spending?period=7d", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7d", svc.lastPeriod)
}

func TestGetSpendingSummaryServiceError(t *testing.T) {
	svc := &stubAnalyticsService{err: errors.New("db down")}
	router := newAnalyticsTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/spending", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestGetMonthlyTrendsParsesMonths(t *testing.T) {
	svc := &stubAnalyticsService{}
	router := newAnalyticsTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/trends?months=6", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 6, svc.lastMonths)
}

func TestGetTopItemsParsesLimit(t *testing.T) {
	svc := &stubAnalyticsService{}
	router := newAnalyticsTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/top-items?limit=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastLimit)
}

func TestGetCategorySummary(t *testing.T) {
	svc := &stubAnalyticsService{}
	router := newAnalyticsTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/categories?period=90d", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.lastUserID)
	assert.Equal(t, "90d", svc.lastPeriod)
}
