package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type PantryHandler struct {
	pantry   service.IPantryService
	identity identityResolver
	now      func() time.Time
}

func NewPantryHandler(pantry service.IPantryService, authService service.IAuthService) *PantryHandler {
	return &PantryHandler{
		pantry:   pantry,
		identity: identityResolver{auth: authService},
		now:      time.Now,
	}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	pantry := router.Group("/pantry")
	{
		pantry.GET("", h.ListItems)
		pantry.POST("", h.AddItem)
		pantry.DELETE("/:id", h.DeleteItem)
	}
}

func (h *PantryHandler) ListItems(c *gin.Context) {
	user, ok := h.identity.resolve(c, "")
	if !ok {
		return
	}

	items, err := h.pantry.List(c.Request.Context(), user.Email)
	if err != nil {
		internalError(c, "PantryHandler", err)
		return
	}

	now := h.now()
	out := make([]types.PantryItem, 0, len(items))
	for i := range items {
		out = append(out, types.NewPantryItem(&items[i], now))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PantryHandler) AddItem(c *gin.Context) {
	var req types.PantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.identity.badBody(c)
		return
	}

	user, ok := h.identity.resolve(c, req.User)
	if !ok {
		return
	}

	expiry, err := service.ParseExpiry(req.Expiry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry must be a positive integer"})
		return
	}

	item, err := h.pantry.Add(c.Request.Context(), user.Email, req.Name, expiry)
	switch {
	case errors.Is(err, service.ErrMissingName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	case errors.Is(err, service.ErrInvalidExpiry):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expiry must be a positive integer"})
		return
	case err != nil:
		internalError(c, "PantryHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added", "item": types.NewPantryItem(item, h.now())})
}

func (h *PantryHandler) DeleteItem(c *gin.Context) {
	user, ok := h.identity.resolve(c, "")
	if !ok {
		return
	}

	err := h.pantry.Delete(c.Request.Context(), user.Email, c.Param("id"))
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	case err != nil:
		internalError(c, "PantryHandler", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
