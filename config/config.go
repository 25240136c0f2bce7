// Package config sources runtime settings from environment variables, with
// an optional .env file for local development.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultAPIBaseURL = "http://localhost:3000/api"
	defaultPageSize   = 10
	defaultLogLevel   = "info"
)

// Config holds everything the CLI needs at startup.
type Config struct {
	// APIBaseURL is where the backend REST API listens.
	APIBaseURL string
	// DataDir holds the local SQLite state database.
	DataDir string
	// PageSize is the default rows-per-page for table browsing.
	PageSize int
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string
}

// StorePath is the SQLite database file inside DataDir.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "restodesk.db")
}

// Load reads RESTODESK_* environment variables and returns a populated
// Config. A .env file in the working directory is loaded first if present;
// real environment variables win over file entries.
func Load() Config {
	_ = loadDotEnv(".env")

	cfg := Config{
		APIBaseURL: os.Getenv("RESTODESK_API_URL"),
		DataDir:    os.Getenv("RESTODESK_DATA_DIR"),
		LogLevel:   os.Getenv("RESTODESK_LOG_LEVEL"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.DataDir = filepath.Join(home, ".restodesk")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	cfg.PageSize = defaultPageSize
	if raw := os.Getenv("RESTODESK_PAGE_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}

	return cfg
}
