// Package config reads service settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"worldcat/internal/platform/worldcat"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	MaxBodyBytes   int64
	WorldCat       worldcat.Config
}

// LoadEnvFiles loads .env and .env.local. Variables already present in the
// process environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func Load() Config {
	return Config{
		Addr:           envString("APP_ADDR", ":8080"),
		LogLevel:       envString("LOG_LEVEL", "info"),
		LogFormat:      envString("LOG_FORMAT", "text"),
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS"),
		MaxBodyBytes:   int64(envInt("MAX_BODY_BYTES", 1<<20)),
		WorldCat: worldcat.Config{
			BaseURL:     envString("WORLDCAT_BASE_URL", worldcat.DefaultBaseURL),
			AccessToken: envString("WORLDCAT_ACCESS_TOKEN", ""),
			UserAgent:   envString("WORLDCAT_USER_AGENT", "worldcat-go/1.0"),
			RPS:         envInt("WORLDCAT_RPS", 5),
			Timeout:     envDuration("WORLDCAT_TIMEOUT", 15*time.Second),
		},
	}
}

func envString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// envInt reads a positive int, falling back to def.
func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func envList(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
