package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
	sessions       middleware.SessionValidator
}

func NewProfileHandler(profileService service.IProfileService, sessions middleware.SessionValidator) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		sessions:       sessions,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.sessions))
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/preferences", h.UpdatePreferences)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), user)
	if err != nil {
		internalError(c, "ProfileHandler", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	updated, err := h.profileService.UpdatePreferences(c.Request.Context(), user.ID, &req)
	switch {
	case errors.Is(err, service.ErrInvalidPreferences):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, service.ErrUnknownUser):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	case err != nil:
		internalError(c, "ProfileHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": updated.Preferences})
}
