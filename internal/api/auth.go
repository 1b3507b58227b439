package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/types"
)

type AuthHandler struct {
	authService service.IAuthService
	limiter     *middleware.RateLimiter
}

// NewAuthHandler creates an auth handler. limiter guards login and may be nil.
func NewAuthHandler(authService service.IAuthService, limiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		if h.limiter != nil {
			auth.POST("/login", h.limiter.RateLimitMiddleware(), h.Login)
		} else {
			auth.POST("/login", h.Login)
		}
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Pass)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User already exists"})
		return
	case err != nil:
		internalError(c, "AuthHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": types.NewUserInfo(user)})
}

// Login never says which of email or password was wrong
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Pass)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	case err != nil:
		internalError(c, "AuthHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    types.NewUserInfo(user),
	})
}

// Logout needs a well-formed, signed token. A token that is no longer the
// active session still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}
	if _, err := h.authService.ValidateToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		internalError(c, "AuthHandler", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
