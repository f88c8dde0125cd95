package config

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings of the visualisation server.
type Config struct {
	Addr            string // Listen address for the HTTP server
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	SearchWorkers   int    // Worker goroutines for batch searches
	MaxGridCells    int    // Largest grid area accepted from clients
	RedisAddr       string // Redis address; empty selects the in-memory cache
	RedisPassword   string // Password for Redis
	RedisDB         int    // Redis database number
	CacheTTLSeconds int    // Lifetime of cached search results
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var (
		cfg Config
		err error
	)
	cfg.Addr = getEnvWithDefault("GRIDASTAR_ADDR", ":8080")
	cfg.GinMode = getEnvWithDefault("GIN_MODE", "release")
	cfg.RedisAddr = getEnvWithDefault("REDIS_ADDR", "")
	cfg.RedisPassword = getEnvWithDefault("REDIS_PASSWORD", "")

	if cfg.SearchWorkers, err = getEnvAsInt("GRIDASTAR_WORKERS", runtime.NumCPU()); err != nil {
		return Config{}, err
	}
	if cfg.MaxGridCells, err = getEnvAsInt("GRIDASTAR_MAX_CELLS", 250000); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTLSeconds, err = getEnvAsInt("CACHE_TTL_SECONDS", 300); err != nil {
		return Config{}, err
	}

	if cfg.SearchWorkers < 1 || cfg.MaxGridCells < 1 {
		return Config{}, fmt.Errorf("GRIDASTAR_WORKERS and GRIDASTAR_MAX_CELLS must be positive")
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
