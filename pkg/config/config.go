package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	MongoURL          string
	DBName            string
	RedisURL          string
	DataGovEnabled    bool
	DataGovAPIKey     string
	DataGovResourceID string
	DataGovBaseURL    string
	CORSOrigins       []string
	DefaultStateCode  string
	Port              string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		MongoURL:          os.Getenv("MONGO_URL"),
		DBName:            getEnv("DB_NAME", "mgnrega_dashboard"),
		RedisURL:          getEnv("REDIS_URL", "redis://localhost:6379"),
		DataGovEnabled:    getEnvBool("DATA_GOV_ENABLED", false),
		DataGovAPIKey:     getEnv("DATA_GOV_API_KEY", "579b464db66ec23bdd000001c5f7ea9da0054f1442874f7b61f02d14"),
		DataGovResourceID: getEnv("DATA_GOV_RESOURCE_ID", "ee03643a-ee4c-48c2-ac30-9f2ff26ab722"),
		DataGovBaseURL:    getEnv("DATA_GOV_BASE_URL", "https://api.data.gov.in/resource"),
		CORSOrigins:       splitAndTrim(getEnv("CORS_ORIGINS", "*")),
		DefaultStateCode:  getEnv("DEFAULT_STATE_CODE", "UP"),
		Port:              getEnv("PORT", "8080"),
	}

	// The persistent store is not optional; everything else degrades.
	if cfg.MongoURL == "" {
		log.Fatal("MONGO_URL environment variable is required but not set")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
