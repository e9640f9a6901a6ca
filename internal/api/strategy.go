package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"investment_tracker/internal/domain" // Importing domain models
	"investment_tracker/internal/store"  // Persistence
	"investment_tracker/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Decimal rates
	"github.com/sirupsen/logrus"    // Logging library
)

const strategyNotFound = "Strategy not found"

// StrategyRequest represents a strategy create or update request. No field is required.
type StrategyRequest struct {
	Type   *string          `json:"type"`   // Strategy label
	Tenure *string          `json:"tenure"` // Holding period unit
	Yield  *decimal.Decimal `json:"yield"`  // Multiplier on success
	Relief *decimal.Decimal `json:"relief"` // Multiplier on failure
}

func (r StrategyRequest) input() store.StrategyInput {
	return store.StrategyInput{Type: r.Type, Tenure: r.Tenure, Yield: r.Yield, Relief: r.Relief}
}

// ListStrategiesHandler returns all strategies with their investments
func ListStrategiesHandler(strategies *store.StrategyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := strategies.List(c.Request.Context())
		if err != nil {
			utils.Fail(c, err)
			return
		}
		resp := make([]domain.StrategyResource, 0, len(list))
		for _, s := range list {
			resp = append(resp, domain.NewStrategyResource(s))
		}
		utils.Success(c, http.StatusOK, resp)
	}
}

// CreateStrategyHandler persists whatever strategy fields are supplied
func CreateStrategyHandler(strategies *store.StrategyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StrategyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, &store.ValidationError{Msg: "Invalid request"})
			return
		}
		strategy, err := strategies.Create(c.Request.Context(), req.input())
		if err != nil {
			utils.Fail(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"strategy_id": strategy.ID,              // Strategy ID
			"type":        strategy.Type,            // Strategy label
			"yield":       strategy.Yield.String(),  // Yield
			"relief":      strategy.Relief.String(), // Relief
		}).Info("Strategy created")
		utils.Success(c, http.StatusCreated, domain.NewStrategyResource(strategy))
	}
}

// ShowStrategyHandler returns one strategy with its investments, read through the cache
func ShowStrategyHandler(strategies *store.StrategyStore, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, strategyNotFound) // Parse strategy ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		ctx := context.Background() // Context for Redis operations
		cacheKey, keyErr := utils.VersionedKey(ctx, rdb, utils.StrategyKey(id))
		var cached domain.StrategyResource
		if keyErr == nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				utils.Success(c, http.StatusOK, cached) // Return cached strategy
				return
			}
		}
		strategy, err := strategies.Find(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		resp := domain.NewStrategyResource(strategy)
		if keyErr == nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, ttl) // Cache the strategy
		}
		utils.Success(c, http.StatusOK, resp)
	}
}

// UpdateStrategyHandler replaces the supplied fields of a strategy
func UpdateStrategyHandler(strategies *store.StrategyStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, strategyNotFound) // Parse strategy ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		var req StrategyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, &store.ValidationError{Msg: "Invalid request"})
			return
		}
		strategy, err := strategies.Update(c.Request.Context(), id, req.input())
		if err != nil {
			utils.Fail(c, err)
			return
		}
		_ = utils.InvalidateCache(context.Background(), rdb, utils.StrategyKey(id)) // Invalidate strategy cache
		logrus.WithField("strategy_id", id).Info("Strategy updated")
		utils.Success(c, http.StatusOK, domain.NewStrategyResource(strategy))
	}
}

// DeleteStrategyHandler removes a strategy
func DeleteStrategyHandler(strategies *store.StrategyStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, strategyNotFound) // Parse strategy ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		if err := strategies.Delete(c.Request.Context(), id); err != nil {
			utils.Fail(c, err)
			return
		}
		_ = utils.InvalidateCache(context.Background(), rdb, utils.StrategyKey(id)) // Invalidate strategy cache
		logrus.WithField("strategy_id", id).Info("Strategy deleted")
		c.Status(http.StatusNoContent)
	}
}
