package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./recipes.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	TokenTTL time.Duration // API token lifetime (default: 30 days)

	MediaDriver    string // Media storage driver (fs, minio) (default: fs)
	MediaRoot      string // Root directory for the fs media driver (default: ./media)
	MinioEndpoint  string // MinIO endpoint, required for the minio driver
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string // MinIO bucket name (default: recipes-media)
	MinioUseSSL    bool

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("RECIPES_DATABASE_FILE", "recipes.db"),
		PepperFile:   getEnvOrDefault("RECIPES_PEPPER_FILE", "pepper"),

		TokenTTL: getEnvDurationOrDefault("RECIPES_TOKEN_TTL", 30*24*time.Hour),

		MediaDriver:    getEnvOrDefault("RECIPES_MEDIA_DRIVER", "fs"),
		MediaRoot:      getEnvOrDefault("RECIPES_MEDIA_ROOT", "media"),
		MinioEndpoint:  os.Getenv("RECIPES_MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("RECIPES_MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("RECIPES_MINIO_SECRET_KEY"),
		MinioBucket:    getEnvOrDefault("RECIPES_MINIO_BUCKET", "recipes-media"),
		MinioUseSSL:    getEnvOrDefault("RECIPES_MINIO_USE_SSL", "false") == "true",

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
