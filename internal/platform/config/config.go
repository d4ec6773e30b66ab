package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration, loaded once at startup.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendBaseURL    string

	PosthogAPIKey   string
	PosthogEndpoint string

	// RateLimitRate uses the limiter formatted notation, e.g. "100-M" for
	// one hundred requests per minute per client IP.
	RateLimitRate string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables, with a .env file
// as optional local override source.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "openbooks")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	viper.SetDefault("RATE_LIMIT_RATE", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            viper.GetString("PGSQL_URL"),
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		JWTIssuer:              viper.GetString("JWT_ISSUER"),
		RefreshTokenCookieName: viper.GetString("REFRESH_TOKEN_COOKIE_NAME"),
		RefreshTokenCookiePath: viper.GetString("REFRESH_TOKEN_COOKIE_PATH"),
		GoogleClientID:         viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:     viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:      viper.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:        viper.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:          viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:        viper.GetString("POSTHOG_ENDPOINT"),
		RateLimitRate:          viper.GetString("RATE_LIMIT_RATE"),
		CORSAllowedOrigins:     viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "insecure-dev-only-jwt-secret"
		log.Println("Warning: JWT_SECRET not set, using insecure development default")
	}

	var err error
	cfg.JWTExpiryDuration, err = time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION: %w", err)
	}
	cfg.RefreshTokenExpiryDuration, err = time.ParseDuration(viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_EXPIRY_DURATION: %w", err)
	}

	return cfg, nil
}
