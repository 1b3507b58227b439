package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type FavoriteHandler struct {
	favorites service.IFavoriteService
	identity  identityResolver
}

func NewFavoriteHandler(favorites service.IFavoriteService, authService service.IAuthService) *FavoriteHandler {
	return &FavoriteHandler{
		favorites: favorites,
		identity:  identityResolver{auth: authService},
	}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("/:recipeId", h.RemoveFavorite)
	}
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	user, ok := h.identity.resolve(c, "")
	if !ok {
		return
	}

	recipes, err := h.favorites.List(c.Request.Context(), user.Email)
	if err != nil {
		internalError(c, "FavoriteHandler", err)
		return
	}
	c.JSON(http.StatusOK, service.FormatRecipes(recipes))
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.identity.badBody(c)
		return
	}

	user, ok := h.identity.resolve(c, req.User)
	if !ok {
		return
	}

	_, err := h.favorites.Add(c.Request.Context(), user.Email, req.RecipeID)
	switch {
	case errors.Is(err, service.ErrMissingRecipeID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipeId is required"})
		return
	case errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	case errors.Is(err, service.ErrAlreadyFavorite):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe already in favorites"})
		return
	case err != nil:
		internalError(c, "FavoriteHandler", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite added"})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	user, ok := h.identity.resolve(c, "")
	if !ok {
		return
	}

	err := h.favorites.Remove(c.Request.Context(), user.Email, c.Param("recipeId"))
	switch {
	case errors.Is(err, service.ErrFavoriteNotFound), errors.Is(err, service.ErrMissingRecipeID):
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	case err != nil:
		internalError(c, "FavoriteHandler", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}
