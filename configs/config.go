package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/caprice1026-disc/aws-parody-page/types"
)

// Config carries every environment-driven setting. It is built once in main
// and handed down explicitly instead of being read from globals.
type Config struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string

	Model        string
	Temperature  float32
	MaxTokens    int
	ResponseMode types.ResponseMode

	FallbackEnabled bool

	Port               string
	RateLimitPerMinute int
	AllowedOrigins     []string
	LogLevel           slog.Level
}

func LoadConfig() *Config {
	cfg := &Config{
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		Model:              getEnv("OPENAI_MODEL", DEFAULT_OPENAI_MODEL),
		Temperature:        float32(getEnvFloat("OPENAI_TEMPERATURE", DEFAULT_TEMPERATURE)),
		MaxTokens:          getEnvInt("OPENAI_MAX_TOKENS", DEFAULT_MAX_TOKENS),
		ResponseMode:       types.ResponseModeJSONSchema,
		FallbackEnabled:    getEnvBool("FALLBACK_ENABLED", false),
		Port:               getEnv("PORT", DEFAULT_PORT),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", DEFAULT_RATE_LIMIT_PER_MINUTE),
		AllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS"),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if mode := os.Getenv("RESPONSE_MODE"); mode != "" {
		parsed, err := types.ParseResponseMode(mode)
		if err != nil {
			slog.Warn("invalid RESPONSE_MODE, using json_schema", "value", mode)
		} else {
			cfg.ResponseMode = parsed
		}
	}

	return cfg
}

// ModelOptions projects the generation settings into the shape the AI
// repository consumes per call.
func (c *Config) ModelOptions() types.ModelOptions {
	return types.ModelOptions{
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Mode:        c.ResponseMode,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("invalid float in environment, using default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
