package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration, optional. Rate limiting falls back to an
	// in-process limiter when no Redis address is configured.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Session configuration
	JWTSecret  string
	SessionTTL time.Duration

	// Assets
	StaticDir    string
	S3BucketName string
	AWSRegion    string

	CORSOrigins []string
	// Proxies whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies []string

	// Requests per minute per client
	LoginRateLimit int
	VoiceRateLimit int
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// S3Enabled reports whether recipe images are served from S3
func (c *Config) S3Enabled() bool {
	return c.S3BucketName != ""
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	if env.UsesDotEnv() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("[Config] ignoring unreadable .env file: %v", err)
		}
	}

	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig reads everything from environment variables
func loadCIConfig(cfg *Config) {
	loadCommon(cfg, func(envKey, _ string) string { return os.Getenv(envKey) })
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	}
	if cfg.DBPassword == "" {
		cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	}
}

// loadDevConfig prefers environment variables and falls back to Docker secrets
func loadDevConfig(cfg *Config) {
	loadCommon(cfg, func(envKey, secret string) string {
		if v := os.Getenv(envKey); v != "" {
			return v
		}
		return readSecret(secret)
	})
	if cfg.JWTSecret == "" {
		log.Printf("[Config] JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = "cookmate-dev-secret"
	}
}

// loadProdConfig prefers Docker secrets and falls back to environment variables
func loadProdConfig(cfg *Config) {
	loadCommon(cfg, func(envKey, secret string) string {
		if v := readSecret(secret); v != "" {
			return v
		}
		return os.Getenv(envKey)
	})
}

func loadCommon(cfg *Config, lookup func(envKey, secret string) string) {
	get := func(envKey, secret, def string) string {
		if v := lookup(envKey, secret); v != "" {
			return v
		}
		return def
	}

	cfg.ServerPort = get("SERVER_PORT", "server_port", "5000")
	cfg.ServerHost = get("SERVER_HOST", "server_host", "0.0.0.0")

	cfg.DBDriver = strings.ToLower(get("DB_DRIVER", "db_driver", "postgres"))
	cfg.DBHost = get("DB_HOST", "db_host", "localhost")
	cfg.DBPort = get("DB_PORT", "db_port", "5432")
	cfg.DBUser = get("DB_USER", "db_user", "postgres")
	cfg.DBPassword = get("DB_PASSWORD", "db_password", "")
	cfg.DBName = get("DB_NAME", "db_name", "cookmate")
	cfg.DBSSLMode = get("DB_SSL_MODE", "db_ssl_mode", "disable")
	cfg.SQLitePath = get("SQLITE_PATH", "sqlite_path", "cookmate.db")

	cfg.RedisHost = get("REDIS_HOST", "redis_host", "")
	cfg.RedisPort = get("REDIS_PORT", "redis_port", "6379")
	cfg.RedisPassword = get("REDIS_PASSWORD", "redis_password", "")
	cfg.RedisURL = get("REDIS_URL", "redis_url", "")
	cfg.RedisDB = atoiOr(get("REDIS_DB", "redis_db", ""), 0)

	cfg.JWTSecret = get("JWT_SECRET", "jwt_secret", "")
	cfg.SessionTTL = durationOr(get("SESSION_TTL", "session_ttl", ""), 24*time.Hour)

	cfg.StaticDir = get("STATIC_DIR", "static_dir", "static")
	cfg.S3BucketName = get("S3_BUCKET_NAME", "s3_bucket_name", "")
	cfg.AWSRegion = get("AWS_REGION", "aws_region", "us-east-1")

	cfg.CORSOrigins = splitList(get("CORS_ORIGINS", "cors_origins", "*"))
	cfg.TrustedProxies = splitList(get("TRUSTED_PROXIES", "trusted_proxies", ""))

	cfg.LoginRateLimit = atoiOr(get("LOGIN_RATE_LIMIT", "login_rate_limit", ""), 10)
	cfg.VoiceRateLimit = atoiOr(get("VOICE_RATE_LIMIT", "voice_rate_limit", ""), 30)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func atoiOr(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}

func durationOr(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(strings.TrimSpace(s)); err == nil && d > 0 {
		return d
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
