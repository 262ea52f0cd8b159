package handler

import (
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// BudgetHandler handles budget category HTTP requests
type BudgetHandler struct {
	budgetService service.BudgetService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetCategories lists the user's budget categories
// @Summary List budget categories
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Budget categories"
// @Router /api/v1/budget [get]
func (h *BudgetHandler) GetCategories(c *gin.Context) {
	categories, err := h.budgetService.GetCategories(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, categories)
}

// CreateCategory creates a budget category
// @Summary Create a budget category
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateCategoryRequest true "Category payload"
// @Success 201 {object} model.Response "Created category"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Router /api/v1/budget [post]
func (h *BudgetHandler) CreateCategory(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.StringLength("name", req.Name, 1, 100),
		validate.NonNegativeNumber("limit", req.Limit),
		validate.NonNegativeNumber("spent", req.Spent),
		validate.OptionalMatches("color", &req.Color, hexColorPattern, "Color must be a valid hex color code"),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	category, err := h.budgetService.CreateCategory(c.Request.Context(), currentUserID(c), &domain.BudgetCategory{
		Name:  req.Name,
		Limit: req.Limit,
		Spent: req.Spent,
		Color: req.Color,
	})
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondCreated(c, category, "Category created successfully")
}

// GetSummary returns the budget roll-up with per-category views
// @Summary Budget summary
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Budget summary"
// @Router /api/v1/budget/summary [get]
func (h *BudgetHandler) GetSummary(c *gin.Context) {
	summary, err := h.budgetService.GetSummary(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, summary)
}

// GetCategory returns one budget category
// @Summary Get a budget category
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} model.Response "Budget category"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/budget/{id} [get]
func (h *BudgetHandler) GetCategory(c *gin.Context) {
	category, err := h.budgetService.GetCategory(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, category)
}

// UpdateCategory applies a partial update to a category
// @Summary Update a budget category
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body model.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} model.Response "Updated category"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/budget/{id} [put]
func (h *BudgetHandler) UpdateCategory(c *gin.Context) {
	var req model.UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.OptionalStringLength("name", req.Name, 1, 100),
		validate.OptionalNonNegativeNumber("limit", req.Limit),
		validate.OptionalNonNegativeNumber("spent", req.Spent),
		validate.OptionalMatches("color", req.Color, hexColorPattern, "Color must be a valid hex color code"),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	category, err := h.budgetService.UpdateCategory(c.Request.Context(), currentUserID(c), c.Param("id"), service.CategoryPatch{
		Name:  req.Name,
		Limit: req.Limit,
		Spent: req.Spent,
		Color: req.Color,
	})
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, category, "Category updated successfully")
}

// DeleteCategory permanently removes a category
// @Summary Delete a budget category
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} model.Response "Deleted"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/budget/{id} [delete]
func (h *BudgetHandler) DeleteCategory(c *gin.Context) {
	if err := h.budgetService.DeleteCategory(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Category deleted successfully")
}

// UpdateSpent adjusts a category's spent amount by a signed delta
// @Summary Adjust spent amount
// @Description Adds the signed amount to the category's spent figure, clamped at zero
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body model.UpdateSpentRequest true "Signed amount"
// @Success 200 {object} model.Response "Updated category"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/budget/{id}/spent [patch]
func (h *BudgetHandler) UpdateSpent(c *gin.Context) {
	var req model.UpdateSpentRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	category, err := h.budgetService.UpdateSpent(c.Request.Context(), currentUserID(c), c.Param("id"), req.Amount)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, category)
}

// ResetSpent zeroes the spent amount of every category
// @Summary Reset all spent amounts
// @Description Zeroes every category's spent figure, leaving limits intact
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Reset"
// @Router /api/v1/budget/reset [patch]
func (h *BudgetHandler) ResetSpent(c *gin.Context) {
	if err := h.budgetService.ResetSpent(c.Request.Context(), currentUserID(c)); err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, nil, "Budget reset successfully")
}

// RegisterRoutes registers the budget routes
func (h *BudgetHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	budget := router.Group("/api/v1/budget", authMiddleware)
	{
		budget.GET("", h.GetCategories)
		budget.POST("", h.CreateCategory)
		budget.GET("/summary", h.GetSummary)
		budget.PATCH("/reset", h.ResetSpent)
		budget.GET("/:id", h.GetCategory)
		budget.PUT("/:id", h.UpdateCategory)
		budget.DELETE("/:id", h.DeleteCategory)
		budget.PATCH("/:id/spent", h.UpdateSpent)
	}
}
