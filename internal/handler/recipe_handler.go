package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/model"
	"github.com/grocerly/grocerly/internal/service"
	"github.com/grocerly/grocerly/internal/validate"
)

// RecipeHandler handles recipe HTTP requests
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func toIngredients(reqs []model.IngredientRequest) []domain.RecipeIngredient {
	ingredients := make([]domain.RecipeIngredient, 0, len(reqs))
	for _, r := range reqs {
		ingredients = append(ingredients, domain.RecipeIngredient{
			Name:   r.Name,
			Amount: r.Amount,
			Unit:   r.Unit,
			Notes:  r.Notes,
		})
	}
	return ingredients
}

// GetRecipes lists public recipes plus the caller's own when authenticated
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param search query string false "Match against title, description and tags"
// @Param category query string false "Exact tag filter"
// @Param difficulty query string false "easy, medium or hard"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} model.Response "Recipes with pagination"
// @Router /api/v1/recipes [get]
func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	limit, err := getQueryInt(c, "limit", 20)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	offset, err := getQueryInt(c, "offset", 0)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	filter := domain.RecipeFilter{
		UserID:     currentUserID(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Limit:      limit,
		Offset:     offset,
	}

	recipes, pagination, err := h.recipeService.GetRecipes(c.Request.Context(), filter)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.RecipeListResponse{Recipes: recipes, Pagination: *pagination})
}

// GetFeatured lists the highest-rated public recipes
// @Summary Featured recipes
// @Tags recipes
// @Produce json
// @Param limit query int false "Number of recipes (default 6)"
// @Success 200 {object} model.Response "Featured recipes"
// @Router /api/v1/recipes/featured [get]
func (h *RecipeHandler) GetFeatured(c *gin.Context) {
	limit, err := getQueryInt(c, "limit", 6)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	recipes, err := h.recipeService.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, recipes)
}

// GetCategories lists every recipe tag in use with its count
// @Summary Recipe categories
// @Tags recipes
// @Produce json
// @Success 200 {object} model.Response "Tags with counts"
// @Router /api/v1/recipes/categories [get]
func (h *RecipeHandler) GetCategories(c *gin.Context) {
	tags, err := h.recipeService.GetCategories(c.Request.Context())
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, tags)
}

// GetRecipe returns one recipe
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} model.Response "Recipe"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, recipe)
}

// CreateRecipe stores a new recipe owned by the caller
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRecipeRequest true "Recipe payload"
// @Success 201 {object} model.Response "Created recipe"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Router /api/v1/recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req model.CreateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.StringLength("title", req.Title, 1, 100),
		validate.StringLength("description", req.Description, 1, 500),
		validate.NonNegativeInt("prepTime", req.PrepTime),
		validate.NonNegativeInt("cookTime", req.CookTime),
		validate.MinInt("servings", req.Servings, 1),
		validate.OptionalOneOf("difficulty", &req.Difficulty, "easy", "medium", "hard"),
		validate.MinItems("ingredients", len(req.Ingredients), 1, "Recipe must have at least one ingredient"),
		validate.MinItems("instructions", len(req.Instructions), 1, "Recipe must have at least one instruction"),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	recipe := &domain.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   domain.Difficulty(req.Difficulty),
		Ingredients:  toIngredients(req.Ingredients),
		Instructions: req.Instructions,
		Tags:         req.Tags,
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), currentUserID(c), recipe)
	if err != nil {
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondCreated(c, created, "Recipe created successfully")
}

// UpdateRecipe applies a partial update to one of the caller's recipes
// @Summary Update a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body model.UpdateRecipeRequest true "Fields to change"
// @Success 200 {object} model.Response "Updated recipe"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req model.UpdateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(
		validate.OptionalStringLength("title", req.Title, 1, 100),
		validate.OptionalStringLength("description", req.Description, 1, 500),
		validate.OptionalNonNegativeInt("prepTime", req.PrepTime),
		validate.OptionalNonNegativeInt("cookTime", req.CookTime),
		validate.OptionalMinInt("servings", req.Servings, 1),
		validate.OptionalOneOf("difficulty", req.Difficulty, "easy", "medium", "hard"),
	)
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	patch := service.RecipePatch{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Instructions: req.Instructions,
		Tags:         req.Tags,
	}
	if req.Ingredients != nil {
		patch.Ingredients = toIngredients(req.Ingredients)
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), currentUserID(c), c.Param("id"), patch)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, recipe, "Recipe updated successfully")
}

// DeleteRecipe permanently removes one of the caller's recipes
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} model.Response "Deleted"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, nil, "Recipe deleted successfully")
}

// RateRecipe folds a submitted rating into the recipe's stored rating
// @Summary Rate a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body model.RateRecipeRequest true "Rating between 1 and 5"
// @Success 200 {object} model.Response "Updated recipe"
// @Failure 400 {object} model.ErrorResponse "Validation failed"
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /api/v1/recipes/{id}/rate [post]
func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	var req model.RateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	failures := validate.Run(validate.NumberRange("rating", req.Rating, 1, 5))
	if len(failures) > 0 {
		respondValidationFailures(c, failures)
		return
	}

	recipe, err := h.recipeService.RateRecipe(c.Request.Context(), c.Param("id"), req.Rating)
	if err != nil {
		respondRepositoryError(c, err)
		return
	}

	respondOK(c, recipe, "Rating submitted")
}

// RegisterRoutes registers the recipe routes. Listing and reading work
// without a token; optionalAuth lets authenticated callers see their own
// private recipes alongside public ones.
func (h *RecipeHandler) RegisterRoutes(router *gin.Engine, authMiddleware, optionalAuth gin.HandlerFunc) {
	recipes := router.Group("/api/v1/recipes")
	{
		recipes.GET("", optionalAuth, h.GetRecipes)
		recipes.GET("/featured", h.GetFeatured)
		recipes.GET("/categories", h.GetCategories)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", authMiddleware, h.CreateRecipe)
		recipes.PUT("/:id", authMiddleware, h.UpdateRecipe)
		recipes.DELETE("/:id", authMiddleware, h.DeleteRecipe)
		recipes.POST("/:id/rate", authMiddleware, h.RateRecipe)
	}
}
