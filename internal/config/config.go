package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"bizbook/internal/query"
)

// ─────────────────────────────────────────────────────────────
// Runtime configuration
// ─────────────────────────────────────────────────────────────
//
// Loaded from a .env file (when present) plus BIZBOOK_* environment
// variables. The API endpoint is the only required external surface;
// everything else has a default.

const (
	envAPIBaseURL = "BIZBOOK_API_URL"
	envPageSize   = "BIZBOOK_PAGE_SIZE"
	envDataDir    = "BIZBOOK_DATA_DIR"

	// DefaultAPIBaseURL is the fixed base endpoint of the businesses API.
	DefaultAPIBaseURL = "http://localhost:5000/api"
)

// Config holds the runtime configuration.
type Config struct {
	APIBaseURL string
	PageSize   int
	DataDir    string
}

// Load reads envPath (ignored when missing) and the environment.
func Load(envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	cfg := Config{
		APIBaseURL: DefaultAPIBaseURL,
		PageSize:   query.DefaultPageSize,
		DataDir:    defaultDataDir(),
	}
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	return cfg, nil
}

// Reload re-reads envPath like Load, but lets the file win over
// variables already in the process environment. Load alone cannot pick
// up an edited value once startup has populated the environment,
// because godotenv never overrides a variable that is already set.
func Reload(envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Overload(envPath); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envPath, err)
		}
	}
	return Load("")
}

// EnvPath returns the default .env location inside the data dir.
func EnvPath(dataDir string) string {
	return filepath.Join(dataDir, ".env")
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bizbook"
	}
	return filepath.Join(homeDir, ".local", "share", "bizbook")
}
