package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"io"       // Empty body detection
	"net/http" // HTTP status codes

	"investment_tracker/internal/domain"    // Importing domain models
	"investment_tracker/internal/investing" // Investment engine
	"investment_tracker/internal/store"     // Persistence
	"investment_tracker/internal/utils"     // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// ListInvestmentsHandler returns every investment
func ListInvestmentsHandler(investments *store.InvestmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := investments.List(c.Request.Context())
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, domain.NewInvestmentResources(list))
	}
}

// CreateInvestmentHandler places an investment; outcome and returns are decided server-side
func CreateInvestmentHandler(engine *investing.Engine, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req investing.Request // Bind JSON request to struct
		// An empty body is treated as an order with every field missing
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			// Ids never fail to decode, so this is a malformed body or amount
			utils.Fail(c, &store.ValidationError{Msg: investing.InvalidRequestMessage})
			return
		}
		inv, err := engine.Invest(c.Request.Context(), req)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		_ = utils.InvalidateCache(context.Background(), rdb, utils.StrategyKey(inv.StrategyID)) // Strategy now lists this investment
		utils.Success(c, http.StatusCreated, domain.NewInvestmentResource(inv))
	}
}

// ShowInvestmentHandler returns one investment
func ShowInvestmentHandler(investments *store.InvestmentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "Investment not found") // Parse investment ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		inv, err := investments.Find(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, domain.NewInvestmentResource(inv))
	}
}

// UpdateInvestmentHandler rejects every update without looking the investment up
func UpdateInvestmentHandler(engine *investing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Fail(c, engine.Update())
	}
}

// DeleteInvestmentHandler rejects every delete without looking the investment up
func DeleteInvestmentHandler(engine *investing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Fail(c, engine.Delete())
	}
}
