package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

// SpendingHandler handles spending record HTTP requests
type SpendingHandler struct {
	budgetService service.BudgetService
}

// NewSpendingHandler creates a new spending handler
func NewSpendingHandler(budgetService service.BudgetService) *SpendingHandler {
	return &SpendingHandler{budgetService: budgetService}
}

// GetRecords lists the user's spending records, oldest first
// @Summary List spending records
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Param since query string false "Only records on or after this date (YYYY-MM-DD)"
// @Success 200 {object} model.Response "Spending records"
// @Router /api/v1/spending-records [get]
func (h *SpendingHandler) GetRecords(c *gin.Context) {
	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondBadRequest(c, "Invalid since date: expected YYYY-MM-DD")
			return
		}
		since = &parsed
	}

	records, err := h.budgetService.GetSpendingRecords(c.Request.Context(), currentUserID(c), since)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, records)
}

// CreateRecord logs a spending record
// @Summary Log a spending record
// @Tags spending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateSpendingRecordRequest true "Record payload"
// @Success 201 {object} model.Response "Created record"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Router /api/v1/spending-records [post]
func (h *SpendingHandler) CreateRecord(c *gin.Context) {
	var req model.CreateSpendingRecordRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.NonNegativeNumber("amount", req.Amount),
		validate.StringLength("category", req.Category, 1, 50),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	record, err := h.budgetService.CreateSpendingRecord(c.Request.Context(), currentUserID(c), req.Amount, req.Category)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondCreated(c, record, "Spending record created")
}

// DeleteRecord permanently removes a spending record
// @Summary Delete a spending record
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} model.Response "Deleted"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/spending-records/{id} [delete]
func (h *SpendingHandler) DeleteRecord(c *gin.Context) {
	if err := h.budgetService.DeleteSpendingRecord(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Spending record deleted")
}

// RegisterRoutes registers the spending record routes
func (h *SpendingHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	spending := router.Group("/api/v1/spending-records", authMiddleware)
	{
		spending.GET("", h.GetRecords)
		spending.POST("", h.CreateRecord)
		spending.DELETE("/:id", h.DeleteRecord)
	}
}
