package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port              string
	Env               string
	AllowedOrigins    []string
	TrustProxyHeaders bool

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int
	GeminiTimeoutSecs    int

	// Persona
	Persona     string
	PersonaFile string

	// Optional activity log
	DatabaseURL string
	JWTSecret   string

	// Optional shared rate limit counters
	RedisURL           string
	ChatRequestsPerMin int

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load reads the process environment (and .env, if present). A missing
// GEMINI_API_KEY panics so the process never starts unauthenticated.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		AllowedOrigins:       getEnvAsListOrDefault("ALLOWED_ORIGINS", []string{"*"}),
		TrustProxyHeaders:    getEnvAsBoolOrDefault("TRUST_PROXY_HEADERS", false),
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		GeminiTimeoutSecs:    getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 60),
		Persona:              getEnvOrDefault("PERSONA", "explainer"),
		PersonaFile:          getEnvOrDefault("PERSONA_FILE", ""),
		DatabaseURL:          getEnvOrDefault("DATABASE_URL", ""),
		JWTSecret:            getEnvOrDefault("JWT_SECRET", ""),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		ChatRequestsPerMin:   getEnvAsIntOrDefault("CHAT_RATE_LIMIT_PER_MINUTE", 30),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:              getEnvOrDefault("LOG_FILE", ""),
	}

	return cfg
}

// ActivityLogEnabled reports whether chat usage should be recorded.
// Both a database and a token secret are needed to attribute activity.
func (c *Config) ActivityLogEnabled() bool {
	return c.DatabaseURL != "" && c.JWTSecret != ""
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
