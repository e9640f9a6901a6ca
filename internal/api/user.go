package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"investment_tracker/internal/domain" // Importing domain models
	"investment_tracker/internal/store"  // Persistence
	"investment_tracker/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

const userNotFound = "User not found"

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"` // First name must be provided
	LastName  string `json:"last_name" binding:"required"`  // Last name must be provided
	Email     string `json:"email" binding:"required"`      // Email must be provided
}

// UpdateUserRequest represents a user update request; absent fields are kept
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"` // New first name
	LastName  *string `json:"last_name"`  // New last name
	Email     *string `json:"email"`      // New email
}

// ListUsersHandler returns all users with their wallet info
func ListUsersHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context()) // Fetch users with wallets
		if err != nil {
			utils.Fail(c, err)
			return
		}
		resp := make([]domain.UserResource, 0, len(list)) // Project each user
		for _, u := range list {
			resp = append(resp, domain.NewUserResource(u))
		}
		utils.Success(c, http.StatusOK, resp)
	}
}

// CreateUserHandler creates a user together with its empty wallet
func CreateUserHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			utils.Fail(c, &store.ValidationError{Msg: "First name, last name and email are required"})
			return
		}
		user, err := users.Create(c.Request.Context(), store.UserInput{
			FirstName: req.FirstName, // First name
			LastName:  req.LastName,  // Last name
			Email:     req.Email,     // Email
		})
		if err != nil {
			utils.Fail(c, err)
			return
		}
		// Log user creation
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,        // User ID
			"wallet_id": user.Wallet.ID, // Wallet ID
		}).Info("User created")
		utils.Success(c, http.StatusCreated, domain.NewUserResource(user))
	}
}

// ShowUserHandler returns one user with its wallet, read through the cache
func ShowUserHandler(users *store.UserStore, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, userNotFound) // Parse user ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		ctx := context.Background() // Context for Redis operations
		// Resolved before the DB read so a racing invalidation retires this key
		cacheKey, keyErr := utils.VersionedKey(ctx, rdb, utils.UserKey(id))
		var cached domain.UserResource
		// If found in cache, return it
		if keyErr == nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				utils.Success(c, http.StatusOK, cached)
				return
			}
		}
		user, err := users.Find(c.Request.Context(), id) // If not in cache, fetch from DB
		if err != nil {
			utils.Fail(c, err)
			return
		}
		resp := domain.NewUserResource(user)
		if keyErr == nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, ttl) // Cache the user
		}
		utils.Success(c, http.StatusOK, resp)
	}
}

// UpdateUserHandler replaces the supplied fields of a user
func UpdateUserHandler(users *store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, userNotFound) // Parse user ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Fail(c, &store.ValidationError{Msg: "Invalid request"})
			return
		}
		user, err := users.Update(c.Request.Context(), id, store.UserPatch{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
		})
		if err != nil {
			utils.Fail(c, err)
			return
		}
		_ = utils.InvalidateCache(context.Background(), rdb, utils.UserKey(id)) // Invalidate user cache
		logrus.WithField("user_id", id).Info("User updated")
		utils.Success(c, http.StatusOK, domain.NewUserResource(user))
	}
}

// DeleteUserHandler removes a user and its wallet
func DeleteUserHandler(users *store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, userNotFound) // Parse user ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		if err := users.Delete(c.Request.Context(), id); err != nil {
			utils.Fail(c, err)
			return
		}
		_ = utils.InvalidateCache(context.Background(), rdb, utils.UserKey(id)) // Invalidate user cache
		logrus.WithField("user_id", id).Info("User deleted")
		c.Status(http.StatusNoContent)
	}
}

// UserInvestmentsHandler lists the investments owned by a user
func UserInvestmentsHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, userNotFound) // Parse user ID
		if err != nil {
			utils.Fail(c, err)
			return
		}
		list, err := users.Investments(c.Request.Context(), id)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		utils.Success(c, http.StatusOK, domain.NewInvestmentResources(list))
	}
}
