package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/cookmate/backend/internal/database"
	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/service"
)

const Banner = "CookMate Backend is Running"

// Services holds everything the handlers depend on. Limiters are optional.
type Services struct {
	Recipes       service.IRecipeService
	Voice         service.IVoiceService
	Auth          service.IAuthService
	Profiles      service.IProfileService
	Pantry        service.IPantryService
	Favorites     service.IFavoriteService
	Feedback      service.IFeedbackService
	Substitutions service.ISubstitutionService
	Assets        *service.AssetService

	LoginLimiter *middleware.RateLimiter
	VoiceLimiter *middleware.RateLimiter
}

// NewServices wires the gorm-backed services around one shared handle
func NewServices(db *gorm.DB, jwtSecret string, sessionTTL time.Duration, assets *service.AssetService) *Services {
	recipes := service.NewRecipeService(db)
	return &Services{
		Recipes:       recipes,
		Voice:         service.NewVoiceService(recipes),
		Auth:          service.NewAuthService(db, jwtSecret, sessionTTL),
		Profiles:      service.NewProfileService(db),
		Pantry:        service.NewPantryService(db),
		Favorites:     service.NewFavoriteService(db, recipes),
		Feedback:      service.NewFeedbackService(db),
		Substitutions: service.NewSubstitutionService(),
		Assets:        assets,
	}
}

// Home answers the root URL with a plain-text banner
func Home(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// HealthCheck returns the health status of the API. db may be nil.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := database.HealthCheck(ctx, db); err != nil {
				dbStatus = "unavailable"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"message":  Banner,
			"database": dbStatus,
		})
	}
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, svc *Services) {
	router.GET("/", Home)
	router.GET("/health", HealthCheck(db))
	router.GET("/api/health", HealthCheck(db))

	sessions := svc.Auth

	apiGroup := router.Group("/api")
	NewRecipeHandler(svc.Recipes, svc.Profiles, svc.Substitutions, sessions).RegisterRoutes(apiGroup)
	NewVoiceHandler(svc.Voice, svc.VoiceLimiter).RegisterRoutes(apiGroup)
	NewAuthHandler(svc.Auth, svc.LoginLimiter).RegisterRoutes(apiGroup)
	NewProfileHandler(svc.Profiles, sessions).RegisterRoutes(apiGroup)
	NewPantryHandler(svc.Pantry, svc.Auth).RegisterRoutes(apiGroup)
	NewFavoriteHandler(svc.Favorites, svc.Auth).RegisterRoutes(apiGroup)
	NewFeedbackHandler(svc.Feedback).RegisterRoutes(apiGroup)

	if svc.Assets != nil {
		NewStaticHandler(svc.Assets).RegisterRoutes(router)
	}
}
