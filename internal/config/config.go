package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	RedisURI       string // optional; rate limiting is disabled when empty
	Port           string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS, comma-separated
	Environment    string   // ENV: production, development, etc.
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/fitlog")),
		RedisURI:       getEnv("REDIS_URI", ""),
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: allowedOrigins,
		Environment:    env,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
