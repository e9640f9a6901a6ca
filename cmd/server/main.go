package main

import (
	"context" // context package is needed for Redis operations
	"time"    // Cache TTL

	"investment_tracker/internal/api"        // Custom package for API handlers
	"investment_tracker/internal/config"     // Custom package for configuration
	"investment_tracker/internal/db"         // Custom package for database setup
	"investment_tracker/internal/investing"  // Custom package for the investment engine
	"investment_tracker/internal/middleware" // Custom package for middleware
	"investment_tracker/internal/store"      // Custom package for persistence

	"github.com/gin-gonic/gin"                       // Gin web framework
	"github.com/prometheus/client_golang/prometheus" // Prometheus metrics
	"github.com/redis/go-redis/v9"                   // Redis client
	"github.com/sirupsen/logrus"                     // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Connect to the database and make sure the schema exists
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client when configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Info("Redis not configured, caching disabled")
	}

	// Outcome source
	var coin investing.Coin = investing.NewRandomCoin()
	if cfg.RandomSeed != nil {
		coin = investing.NewSeededCoin(*cfg.RandomSeed)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	users := store.NewUserStore(conn)
	strategies := store.NewStrategyStore(conn)
	investments := store.NewInvestmentStore(conn)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		Users:       users,
		Strategies:  strategies,
		Investments: investments,
		Engine:      investing.NewEngine(users, strategies, investments, coin, metrics),
		Redis:       redisClient,
		CacheTTL:    time.Duration(cfg.CacheTTL) * time.Second,
		Metrics:     metrics,
		Gatherer:    registry,
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
