package config

import (
	"os"
	"strings"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string
	ProductsPath string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads configuration from environment variables, applying defaults
// where a value is optional.
func Load() {
	AppConfig = Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    getEnv("JWT_SECRET", "dmart-secret-key-2026"),
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		ProductsPath: getEnv("PRODUCTS_PATH", "data/products.json"),
	}
}

// HasGeminiKey reports whether a usable Gemini API key is configured.
// Placeholder values copied from a template .env count as unconfigured.
func (c Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != "" && c.GeminiAPIKey != "your-google-api-key-here"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
