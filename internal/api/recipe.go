package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-finder/backend/internal/model"
	"github.com/pageza/recipe-finder/backend/internal/service"
)

// RecipeHandler serves recipe search, recipe details and the cuisine list
type RecipeHandler struct {
	recipes service.IRecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes mounts the recipe routes on router
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
	router.GET("/cuisines", h.ListCuisines)
}

// ListRecipes answers 200 in every case; upstream trouble shows up as
// fallback data and the source header.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	// Unparsable offsets read as the first page
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	res := h.recipes.GetRecipes(c.Request.Context(), model.RecipeFilter{
		Search:     c.Query("search"),
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
		Offset:     offset,
	})
	setSource(c, res.Source)
	c.JSON(http.StatusOK, res.Data)
}

// GetRecipe answers 404 whenever the recipe cannot be produced
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	res, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	setSource(c, res.Source)
	c.JSON(http.StatusOK, res.Data)
}

// ListCuisines returns the cuisine names, falling back to a fixed list
func (h *RecipeHandler) ListCuisines(c *gin.Context) {
	res := h.recipes.ListCuisines(c.Request.Context())
	setSource(c, res.Source)
	c.JSON(http.StatusOK, res.Data)
}
