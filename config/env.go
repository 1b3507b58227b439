package config

import (
	"os"
	"strings"
)

// Environment selects where configuration is read from
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// ParseEnvironment maps an ENV value onto an Environment. Anything it
// doesn't recognise is Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "test", "testing":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

// GetEnvironment reads ENV. CI=true wins so pipelines never pick up a
// developer's .env file.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// UsesDotEnv reports whether a local .env file should be loaded
func (e Environment) UsesDotEnv() bool {
	return e == Development || e == Test
}

func IsDevelopment() bool {
	return GetEnvironment() == Development
}

func IsProduction() bool {
	return GetEnvironment() == Production
}
