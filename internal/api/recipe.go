package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type RecipeHandler struct {
	recipes       service.IRecipeService
	profiles      service.IProfileService
	substitutions service.ISubstitutionService
	sessions      middleware.SessionValidator
}

func NewRecipeHandler(
	recipes service.IRecipeService,
	profiles service.IProfileService,
	substitutions service.ISubstitutionService,
	sessions middleware.SessionValidator,
) *RecipeHandler {
	return &RecipeHandler{
		recipes:       recipes,
		profiles:      profiles,
		substitutions: substitutions,
		sessions:      sessions,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:slug", middleware.OptionalAuth(h.sessions), h.GetRecipe)
		recipes.GET("/:slug/substitutes", h.GetRecipeSubstitutes)
	}
	router.GET("/substitutes", h.GetSubstitutes)
}

// ListRecipes supports optional cuisine, difficulty and q filters
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := types.RecipeFilter{
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
		Query:      c.Query("q"),
	}
	recipes, err := h.recipes.List(c.Request.Context(), filter)
	if err != nil {
		internalError(c, "RecipeHandler", err)
		return
	}
	c.JSON(http.StatusOK, service.FormatRecipes(recipes))
}

// GetRecipe also records the view for signed-in callers
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		internalError(c, "RecipeHandler", err)
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		if err := h.profiles.RecordView(c.Request.Context(), user.ID, recipe.ID); err != nil {
			log.Printf("[RecipeHandler] failed to record view of %s: %v", recipe.Slug, err)
		}
	}

	c.JSON(http.StatusOK, service.FormatRecipe(recipe))
}

func (h *RecipeHandler) GetRecipeSubstitutes(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		internalError(c, "RecipeHandler", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          recipe.Slug,
		"substitutes": h.substitutions.ForRecipe(recipe),
	})
}

func (h *RecipeHandler) GetSubstitutes(c *gin.Context) {
	ingredient := c.Query("ingredient")
	subs, err := h.substitutions.Suggest(ingredient)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient is required"})
		return
	}
	c.JSON(http.StatusOK, types.SubstitutesResponse{Ingredient: ingredient, Substitutes: subs})
}
