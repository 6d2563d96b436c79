package fetch

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the placeholder REST API used by the demonstrations.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Config controls a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// MaxConcurrency caps in-flight requests per batch. Zero means no cap.
	MaxConcurrency int
	UserAgent      string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   10 * time.Second,
		UserAgent: "narrow-fetch/1",
	}
}

// LoadConfig reads .env (when present) and NARROW_FETCH_* variables on top of
// DefaultConfig.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv("NARROW_FETCH_BASE_URL")); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("NARROW_FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("NARROW_FETCH_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(os.Getenv("NARROW_FETCH_MAX_CONCURRENCY")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("NARROW_FETCH_MAX_CONCURRENCY: want a non-negative integer, got %q", v)
		}
		cfg.MaxConcurrency = n
	}
	if v := strings.TrimSpace(os.Getenv("NARROW_FETCH_USER_AGENT")); v != "" {
		cfg.UserAgent = v
	}
	return cfg, nil
}
