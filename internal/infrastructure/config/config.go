package config

import (
	"os"
	"strconv"
	"time"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
)

// Config holds application configuration values.
type Config struct {
	Port           string
	MongoURI       string
	MongoDBName    string
	RedisURL       string
	AdminSecret    string
	DefaultCountry entity.Country
	GeoRewrite     bool
	Production     bool
	SessionMaxAge  time.Duration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFrom       string
	SupportInbox   string
	ChatAPIURL     string
	ChatAPIKey     string
	ChatModel      string
}

// NewConfig creates a new Config instance, loading values from environment
// variables. AdminSecret deliberately has no fallback: an empty value means
// the admin surface stays closed.
func NewConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDBName:    getEnv("MONGODB_DB_NAME", "quicksquad"),
		RedisURL:       getEnv("REDIS_URL", ""),
		AdminSecret:    getEnv("ADMIN_PASSWORD", ""),
		DefaultCountry: entity.Country(getEnv("DEFAULT_COUNTRY", "IN")),
		GeoRewrite:     getEnvAsBool("GEO_REWRITE", false),
		Production:     getEnv("APP_ENV", "development") == "production",
		SessionMaxAge:  time.Hour * time.Duration(getEnvAsInt("ADMIN_SESSION_EXPIRY_HOURS", 168)), // 7 days
		SMTPHost:       getEnv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("EMAIL_PORT", "587"),
		SMTPUsername:   getEnv("EMAIL_USER", ""),
		SMTPPassword:   getEnv("EMAIL_PASS", ""),
		SMTPFrom:       getEnv("EMAIL_FROM", ""),
		SupportInbox:   getEnv("SUPPORT_INBOX", "devs@digipants.com"),
		ChatAPIURL:     getEnv("CHAT_API_URL", "https://api.openai.com/v1/chat/completions"),
		ChatAPIKey:     getEnv("OPENAI_API_KEY", ""),
		ChatModel:      getEnv("CHAT_MODEL", "gpt-3.5-turbo"),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
