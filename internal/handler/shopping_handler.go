package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

// ShoppingHandler handles shopping list HTTP requests
type ShoppingHandler struct {
	shoppingService service.ShoppingService
}

// NewShoppingHandler creates a new shopping handler
func NewShoppingHandler(shoppingService service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: shoppingService}
}

func itemRules(req model.AddItemRequest) []validate.Rule {
	return []validate.Rule{
		validate.StringLength("name", req.Name, 1, 100),
		validate.StringLength("category", req.Category, 1, 50),
		validate.MinInt("quantity", req.Quantity, 1),
		validate.StringLength("unit", req.Unit, 1, 20),
		validate.OptionalNonNegativeNumber("price", req.Price),
		validate.OptionalOneOf("priority", &req.Priority, "low", "medium", "high"),
		validate.MaxLength("notes", req.Notes, 500),
	}
}

// GetLists lists the user's shopping lists with their items
// @Summary List shopping lists
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Response "Shopping lists"
// @Router /api/v1/shopping-list [get]
func (h *ShoppingHandler) GetLists(c *gin.Context) {
	lists, err := h.shoppingService.GetLists(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, lists)
}

// CreateList creates an empty shopping list
// @Summary Create a shopping list
// @Tags shopping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateListRequest true "List name"
// @Success 201 {object} model.Response "Created list"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Router /api/v1/shopping-list [post]
func (h *ShoppingHandler) CreateList(c *gin.Context) {
	var req model.CreateListRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(validate.StringLength("name", req.Name, 1, 100))
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	list, err := h.shoppingService.CreateList(c.Request.Context(), currentUserID(c), req.Name)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondCreated(c, list, "List created successfully")
}

// GetList returns one shopping list with its items
// @Summary Get a shopping list
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 200 {object} model.Response "Shopping list"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/{id} [get]
func (h *ShoppingHandler) GetList(c *gin.Context) {
	list, err := h.shoppingService.GetList(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, list)
}

// RenameList changes a shopping list's name
// @Summary Rename a shopping list
// @Tags shopping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param request body model.RenameListRequest true "New name"
// @Success 200 {object} model.Response "Updated list"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/{id} [put]
func (h *ShoppingHandler) RenameList(c *gin.Context) {
	var req model.RenameListRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(validate.StringLength("name", req.Name, 1, 100))
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	list, err := h.shoppingService.RenameList(c.Request.Context(), currentUserID(c), c.Param("id"), req.Name)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, list, "List updated successfully")
}

// DeleteList permanently removes a shopping list and its items
// @Summary Delete a shopping list
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 200 {object} model.Response "Deleted"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/{id} [delete]
func (h *ShoppingHandler) DeleteList(c *gin.Context) {
	if err := h.shoppingService.DeleteList(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "List deleted successfully")
}

// AddItem adds an item to a shopping list
// @Summary Add an item
// @Tags shopping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Param request body model.AddItemRequest true "Item payload"
// @Success 201 {object} model.Response "Created item"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 404 {object} model.ErrorResponse "List not found"
// @Router /api/v1/shopping-list/{id}/items [post]
func (h *ShoppingHandler) AddItem(c *gin.Context) {
	var req model.AddItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(itemRules(req)...)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	item := &domain.ShoppingItem{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Price:    req.Price,
		Priority: domain.Priority(req.Priority),
		Notes:    req.Notes,
	}

	created, err := h.shoppingService.AddItem(c.Request.Context(), currentUserID(c), c.Param("id"), item)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondCreated(c, created, "Item added successfully")
}

// UpdateItem applies a partial update to an item
// @Summary Update an item
// @Tags shopping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Param request body model.UpdateItemRequest true "Fields to change"
// @Success 200 {object} model.Response "Updated item"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/items/{itemId} [put]
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	var req model.UpdateItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.OptionalStringLength("name", req.Name, 1, 100),
		validate.OptionalStringLength("category", req.Category, 1, 50),
		validate.OptionalMinInt("quantity", req.Quantity, 1),
		validate.OptionalStringLength("unit", req.Unit, 1, 20),
		validate.OptionalNonNegativeNumber("price", req.Price),
		validate.OptionalOneOf("priority", req.Priority, "low", "medium", "high"),
		validate.OptionalMaxLength("notes", req.Notes, 500),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	item, err := h.shoppingService.UpdateItem(c.Request.Context(), currentUserID(c), c.Param("itemId"), service.ItemPatch{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Price:       req.Price,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
		Notes:       req.Notes,
	})
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, item, "Item updated successfully")
}

// DeleteItem permanently removes an item
// @Summary Delete an item
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Success 200 {object} model.Response "Deleted"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/items/{itemId} [delete]
func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	if err := h.shoppingService.DeleteItem(c.Request.Context(), currentUserID(c), c.Param("itemId")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Item deleted successfully")
}

// ToggleItem flips an item's completion state
// @Summary Toggle an item
// @Description Completing stamps completedAt; un-completing clears it
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Param itemId path string true "Item ID"
// @Success 200 {object} model.Response "Updated item"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/items/{itemId}/toggle [patch]
func (h *ShoppingHandler) ToggleItem(c *gin.Context) {
	item, err := h.shoppingService.ToggleItem(c.Request.Context(), currentUserID(c), c.Param("itemId"))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, item)
}

// ClearCompleted removes every completed item from a list
// @Summary Clear completed items
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID"
// @Success 200 {object} model.Response "Cleared"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/shopping-list/{id}/items/completed [delete]
func (h *ShoppingHandler) ClearCompleted(c *gin.Context) {
	if err := h.shoppingService.ClearCompleted(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Completed items cleared")
}

// RegisterRoutes registers the shopping list routes
func (h *ShoppingHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	shopping := router.Group("/api/v1/shopping-list", authMiddleware)
	{
		shopping.GET("", h.GetLists)
		shopping.POST("", h.CreateList)
		shopping.GET("/:id", h.GetList)
		shopping.PUT("/:id", h.RenameList)
		shopping.DELETE("/:id", h.DeleteList)
		shopping.POST("/:id/items", h.AddItem)
		shopping.DELETE("/:id/items/completed", h.ClearCompleted)
		shopping.PUT("/items/:itemId", h.UpdateItem)
		shopping.DELETE("/items/:itemId", h.DeleteItem)
		shopping.PATCH("/items/:itemId/toggle", h.ToggleItem)
	}
}
