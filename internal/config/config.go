package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string  // Application port
	DBDriver   string  // Database driver: mysql, postgres or sqlite
	DBUser     string  // Database user
	DBPassword string  // Database password
	DBHost     string  // Database host
	DBPort     string  // Database port
	DBName     string  // Database name
	DBPath     string  // SQLite database file
	RedisAddr  string  // Redis server address, empty disables caching
	RedisPass  string  // Redis password
	RedisDB    int     // Redis database number
	CacheTTL   int     // Cache TTL in seconds
	RandomSeed *uint64 // Seed for investment outcomes, nil for a random seed
	LogLevel   string  // Logrus level name
	LogFormat  string  // text or json
	IsProd     bool    // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cfg := &Config{
		AppPort:    getEnv("APP_PORT", "8000"),        // Application port
		DBDriver:   getEnv("DB_DRIVER", "mysql"),      // Database driver
		DBUser:     os.Getenv("DB_USER"),              // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),          // Database password
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),    // Database host
		DBPort:     os.Getenv("DB_PORT"),              // Database port
		DBName:     os.Getenv("DB_NAME"),              // Database name
		DBPath:     getEnv("DB_PATH", "investing.db"), // SQLite file
		RedisAddr:  os.Getenv("REDIS_ADDR"),           // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),           // Redis password
		RedisDB:    redisDB,                           // Redis database number
		CacheTTL:   60,                                // Cache TTL in seconds
		LogLevel:   getEnv("LOG_LEVEL", "info"),       // Log level
		LogFormat:  getEnv("LOG_FORMAT", "text"),      // Log format
		IsProd:     os.Getenv("IS_PROD") == "true",    // Is production environment
	}
	if v, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS")); err == nil && v > 0 {
		cfg.CacheTTL = v // Override cache TTL if valid
	}
	if v, err := strconv.ParseUint(os.Getenv("RANDOM_SEED"), 10, 64); err == nil {
		cfg.RandomSeed = &v // Deterministic outcomes when a seed is given
	}
	return cfg
}

// getEnv returns the environment value for key or fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
