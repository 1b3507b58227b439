package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/cookmate/backend/config"
	"github.com/pageza/cookmate/backend/internal/api"
	"github.com/pageza/cookmate/backend/internal/middleware"
	"github.com/pageza/cookmate/backend/internal/router"
	"github.com/pageza/cookmate/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
}

// New builds the services and routes. redisClient and store may be nil:
// rate limits then stay in-process and images come from the static dir.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store service.ObjectStore) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := api.NewServices(db, cfg.JWTSecret, cfg.SessionTTL, service.NewAssetService(store, cfg.StaticDir))
	svc.LoginLimiter = middleware.NewLoginRateLimiter(redisClient, cfg.LoginRateLimit)
	svc.VoiceLimiter = middleware.NewVoiceRateLimiter(redisClient, cfg.VoiceRateLimit)

	r := router.SetupRouter(cfg, db, svc)

	return &Server{
		router: r,
		db:     db,
		redis:  redisClient,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called
func (s *Server) Start() error {
	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the Redis client
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if s.redis != nil {
		if cerr := s.redis.Close(); cerr != nil {
			log.Printf("[Server] failed to close redis: %v", cerr)
		}
	}
	return err
}
