package config

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Placeholder values shipped in .env.example. Credentials equal to these are
// treated the same as missing ones.
const (
	PlaceholderURL     = "your_supabase_project_url"
	PlaceholderAnonKey = "your_supabase_anon_key"
)

type Config struct {
	// Supabase
	SupabaseURL           string
	SupabaseAnonKey       string
	SupabaseJWTSecret     string
	SupabaseStorageBucket string

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:       getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseJWTSecret:     getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "profile-photos"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

// Status reports whether the Supabase credentials look real. Empty values
// and the .env.example placeholders both count as not configured.
func (c *Config) Status() (configured bool, reason string) {
	return Status(c.SupabaseURL, c.SupabaseAnonKey)
}

// Status is the pure check behind Config.Status, kept standalone so it can
// be evaluated against arbitrary credential pairs.
func Status(url, anonKey string) (configured bool, reason string) {
	switch {
	case url == "":
		return false, "SUPABASE_URL is not set"
	case anonKey == "":
		return false, "SUPABASE_ANON_KEY is not set"
	case url == PlaceholderURL:
		return false, "SUPABASE_URL is still the placeholder value"
	case anonKey == PlaceholderAnonKey:
		return false, "SUPABASE_ANON_KEY is still the placeholder value"
	}
	return true, ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
