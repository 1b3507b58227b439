package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/cookmate/backend/config"
	"github.com/pageza/cookmate/backend/internal/api"
	"github.com/pageza/cookmate/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, db *gorm.DB, svc *api.Services) *gin.Engine {
	router := gin.New()
	// nil disables X-Forwarded-For so rate limits key on the socket address
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Printf("[Router] Invalid trusted proxies %v: %v", cfg.TrustedProxies, err)
	}
	router.Use(
		middleware.RequestID(),
		gin.Logger(),
		middleware.ErrorHandler(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	router.GET("/metrics", middleware.MetricsHandler())
	api.RegisterRoutes(router, db, svc)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
