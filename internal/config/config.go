package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

const (
	AppName = "marketplace-api"

	DefaultAccessTokenExpiry  = 15 * time.Minute
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour

	// Development fallback only. Deployments must set JWT_REFRESH_SECRET.
	devRefreshSecret = "your-refresh-secret-key"
)

// Config holds all application configuration, read once at startup and
// treated as read-only afterwards.
type Config struct {
	AppPort string
	AppURL  string
	DBUrl   string

	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// LoadConfig reads the environment (optionally seeded from a .env file)
// and fails fast on anything required.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; relying on process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:" + appPort
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}

	accessSecret := os.Getenv("JWT_ACCESS_SECRET")
	if accessSecret == "" {
		utils.Logger.Fatal("JWT_ACCESS_SECRET env var is missing")
	}

	refreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if refreshSecret == "" {
		refreshSecret = devRefreshSecret
		utils.Logger.Warn("JWT_REFRESH_SECRET is not set; using the insecure development default. Do NOT run production like this.")
	}

	return &Config{
		AppPort:            appPort,
		AppURL:             appURL,
		DBUrl:              dbURL,
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenExpiry:  DefaultAccessTokenExpiry,
		RefreshTokenExpiry: DefaultRefreshTokenExpiry,
	}
}
