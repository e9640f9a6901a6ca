package api

import (
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"investment_tracker/internal/investing"  // Investment engine
	"investment_tracker/internal/middleware" // Custom middleware
	"investment_tracker/internal/store"      // Persistence
	"investment_tracker/internal/utils"      // Response envelope

	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus"          // Prometheus metrics
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics endpoint
	"github.com/redis/go-redis/v9"                            // Redis client
)

// Deps are the collaborators shared by every handler
type Deps struct {
	Users       *store.UserStore       // User store
	Strategies  *store.StrategyStore   // Strategy store
	Investments *store.InvestmentStore // Investment ledger
	Engine      *investing.Engine      // Investment engine
	Redis       *redis.Client          // Optional cache
	CacheTTL    time.Duration          // Cache TTL
	Metrics     *middleware.Metrics    // Optional Prometheus collectors
	Gatherer    prometheus.Gatherer    // Source for /metrics
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler())
	}

	// Health check
	r.GET("/", func(c *gin.Context) {
		utils.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	RegisterRoutes(r.Group("/api"), d)
	return r
}

// RegisterRoutes mounts the user, strategy and investment resources on g
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	// User routes
	g.GET("/user", ListUsersHandler(d.Users))                         // List users
	g.POST("/user", CreateUserHandler(d.Users))                       // Create user with wallet
	g.GET("/user/:id", ShowUserHandler(d.Users, d.Redis, d.CacheTTL)) // Show user
	g.PUT("/user/:id", UpdateUserHandler(d.Users, d.Redis))           // Update user
	g.DELETE("/user/:id", DeleteUserHandler(d.Users, d.Redis))        // Delete user
	g.GET("/user/:id/investments", UserInvestmentsHandler(d.Users))   // List a user's investments

	// Strategy routes
	g.GET("/strategy", ListStrategiesHandler(d.Strategies))                        // List strategies
	g.POST("/strategy", CreateStrategyHandler(d.Strategies))                       // Create strategy
	g.GET("/strategy/:id", ShowStrategyHandler(d.Strategies, d.Redis, d.CacheTTL)) // Show strategy
	g.PUT("/strategy/:id", UpdateStrategyHandler(d.Strategies, d.Redis))           // Update strategy
	g.DELETE("/strategy/:id", DeleteStrategyHandler(d.Strategies, d.Redis))        // Delete strategy

	// Investment routes
	g.GET("/investment", ListInvestmentsHandler(d.Investments))       // List investments
	g.POST("/investment", CreateInvestmentHandler(d.Engine, d.Redis)) // Create investment
	g.GET("/investment/:id", ShowInvestmentHandler(d.Investments))    // Show investment
	g.PUT("/investment/:id", UpdateInvestmentHandler(d.Engine))       // Always rejected
	g.DELETE("/investment/:id", DeleteInvestmentHandler(d.Engine))    // Always rejected
}
