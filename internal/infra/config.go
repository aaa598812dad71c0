package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	Port                string
	DataDir             string
	StylesOverlayPath   string
	AllowedOrigins      []string
	PollinationsBaseURL string
	PollinationsAPIKey  string
	GenerationTimeout   time.Duration
	GenerationInterval  time.Duration
	ModelsCacheTTL      time.Duration
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DataDir:             getEnv("DATA_DIR", "./data"),
		StylesOverlayPath:   os.Getenv("STYLES_OVERLAY_PATH"),
		AllowedOrigins:      splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		PollinationsBaseURL: getEnv("POLLINATIONS_BASE_URL", "https://gen.pollinations.ai/image"),
		PollinationsAPIKey:  os.Getenv("POLLINATIONS_API_KEY"),
		GenerationTimeout:   time.Second * time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 120)),
		GenerationInterval:  time.Millisecond * time.Duration(getEnvInt("GENERATION_INTERVAL_MS", 1000)),
		ModelsCacheTTL:      time.Second * time.Duration(getEnvInt("MODELS_CACHE_TTL_SECONDS", 300)),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		// Write timeout must cover a full sequential batch against the remote service.
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 600)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.PollinationsAPIKey == "" {
		return nil, fmt.Errorf("POLLINATIONS_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
