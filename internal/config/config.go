package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Mongo Configuration
	Mongo MongoConfig

	// HTTP Server Configuration
	Server ServerConfig

	// Auth Configuration
	Auth AuthConfig

	// Image Host Configuration
	ImgHost ImgHostConfig

	// Logging Configuration
	Logging LoggingConfig
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string
	Database string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        string
	Environment string // "production" hardens cookie attributes
	CORSOrigins []string
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	TokenSecret string
}

// ImgHostConfig holds the third-party image hosting endpoint
type ImgHostConfig struct {
	UploadURL string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// defaultCORSOrigins are the storefront origins allowed to send credentials.
var defaultCORSOrigins = []string{
	"https://techzen-d931f.web.app",
	"http://localhost:5173",
	"https://techzen-d931f.firebaseapp.com",
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	origins := defaultCORSOrigins
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017/?retryWrites=true&w=majority"),
			Database: getEnv("DATABASE_NAME", "TechZen"),
		},
		Server: ServerConfig{
			Port:        getEnv("PORT", "8000"),
			Environment: getEnv("APP_ENV", "development"),
			CORSOrigins: origins,
		},
		Auth: AuthConfig{
			TokenSecret: secret,
		},
		ImgHost: ImgHostConfig{
			UploadURL: getEnv("IMGBB_UPLOAD_URL", "https://api.imgbb.com/1/upload"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

// IsProduction reports whether the deployment-mode flag is set to production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
