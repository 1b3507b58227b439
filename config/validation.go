package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration against the requirements of the
// current environment. Every problem is reported, not just the first.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []error

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errs = append(errs, ValidationError{"SERVER_PORT", "must be numeric"})
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "is required for postgres"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "is required for postgres"})
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{"SQLITE_PATH", "is required for sqlite"})
		}
		if env == Production {
			errs = append(errs, ValidationError{"DB_DRIVER", "sqlite is not supported in production"})
		}
	default:
		errs = append(errs, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{"JWT_SECRET", "is required"})
	}

	if env == Production || env == CI {
		if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"DB_PASSWORD", "is required"})
		}
		if len(cfg.JWTSecret) < 32 && env == Production {
			errs = append(errs, ValidationError{"JWT_SECRET", "must be at least 32 characters in production"})
		}
	}

	if cfg.LoginRateLimit <= 0 {
		errs = append(errs, ValidationError{"LOGIN_RATE_LIMIT", "must be positive"})
	}
	if cfg.VoiceRateLimit <= 0 {
		errs = append(errs, ValidationError{"VOICE_RATE_LIMIT", "must be positive"})
	}

	return errors.Join(errs...)
}
