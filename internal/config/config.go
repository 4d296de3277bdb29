// README: Config loader with env defaults for HTTP, Redis cache, and collaborator credentials.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string
	HTTP   struct {
		Addr string
	}
	Redis struct {
		Addr     string
		CacheTTL time.Duration
	}
	AI struct {
		GeminiKey string
	}
	Search struct {
		TavilyKey string
	}
	Media struct {
		PexelsKey string
	}
	Maps struct {
		APIKey string
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present. Only the Gemini key is mandatory:
// every other credential is an optional enrichment and its absence switches
// the corresponding collaborator to its fallback behaviour.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.AppEnv = envOrDefault("VOYAGER_APP_ENV", "prod")
	cfg.HTTP.Addr = envOrDefault("VOYAGER_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("VOYAGER_REDIS_ADDR", "")
	cfg.Redis.CacheTTL = time.Duration(envOrDefaultInt("VOYAGER_CACHE_TTL_SECONDS", 900)) * time.Second
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.Search.TavilyKey = envOrDefault("TAVILY_API_KEY", "")
	cfg.Media.PexelsKey = envOrDefault("PEXELS_API_KEY", "")
	cfg.Maps.APIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
