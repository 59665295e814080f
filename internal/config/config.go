// Package config provides configuration loading and validation for the
// server, read from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ServerConfig holds the HTTP server and backing-service settings.
type ServerConfig struct {
	Port           int
	DatabaseURL    string
	GeminiAPIKey   string // optional, roadmap intros fall back to static text without it
	AllowedOrigins []string
	LogJSON        bool
	LogDebug       bool
}

// NewServerConfig creates the server configuration from environment
// variables. It reads PORT (default: 8080), DATABASE_URL (required),
// GEMINI_API_KEY, CORS_ALLOWED_ORIGINS (comma-separated, default: *),
// LOG_JSON, and LOG_DEBUG.
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // default
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	config := &ServerConfig{
		Port:           port,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AllowedOrigins: origins,
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		LogDebug:       os.Getenv("LOG_DEBUG") == "true",
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
