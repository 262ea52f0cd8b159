package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/service"
)

// AnalyticsHandler handles spending analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// queryPeriod returns the period selector, defaulting to 30d
func queryPeriod(c *gin.Context) string {
	period := c.Query("period")
	if period == "" {
		return "30d"
	}
	return period
}

// GetSpendingSummary reports spend totals over the selected period
// @Summary Spending summary
// @Description Merges completed purchases and manual spending records into totals, a category breakdown and a daily series
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "7d, 30d, 90d or 1y (default 30d)"
// @Success 200 {object} model.Response "Spending summary"
// @Router /api/v1/analytics/spending [get]
func (h *AnalyticsHandler) GetSpendingSummary(c *gin.Context) {
	summary, err := h.analyticsService.SpendingSummary(c.Request.Context(), currentUserID(c), queryPeriod(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, summary)
}

// GetCategorySummary reports per-category purchase totals over the period
// @Summary Category analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "7d, 30d, 90d or 1y (default 30d)"
// @Success 200 {object} model.Response "Category analytics"
// @Router /api/v1/analytics/categories [get]
func (h *AnalyticsHandler) GetCategorySummary(c *gin.Context) {
	analytics, err := h.analyticsService.CategorySummary(c.Request.Context(), currentUserID(c), queryPeriod(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, analytics)
}

// GetMonthlyTrends reports monthly spend against the fixed budget
// @Summary Monthly trends
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param months query int false "Number of months (default 12)"
// @Success 200 {object} model.Response "Monthly trends, oldest first"
// @Router /api/v1/analytics/trends [get]
func (h *AnalyticsHandler) GetMonthlyTrends(c *gin.Context) {
	months, err := getQueryInt(c, "months", service.DefaultTrendMonths)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	trends, err := h.analyticsService.MonthlyTrends(c.Request.Context(), currentUserID(c), months)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, trends)
}

// GetTopItems ranks purchased items by price and by frequency
// @Summary Top items
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Ranking size (default 10)"
// @Success 200 {object} model.Response "Top items"
// @Router /api/v1/analytics/top-items [get]
func (h *AnalyticsHandler) GetTopItems(c *gin.Context) {
	limit, err := getQueryInt(c, "limit", service.DefaultTopItemsLimit)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	items, err := h.analyticsService.TopItems(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, items)
}

// RegisterRoutes registers the analytics routes
func (h *AnalyticsHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	analytics := router.Group("/api/v1/analytics", authMiddleware)
	{
		analytics.GET("/spending", h.GetSpendingSummary)
		analytics.GET("/categories", h.GetCategorySummary)
		analytics.GET("/trends", h.GetMonthlyTrends)
		analytics.GET("/top-items", h.GetTopItems)
	}
}
