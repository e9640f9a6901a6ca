package utils

import (
	"errors"   // Error kind matching
	"net/http" // HTTP status codes

	"investment_tracker/internal/store" // Error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Success writes data inside the success envelope
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// Fail writes err inside the error envelope with the status of its kind
func Fail(c *gin.Context, err error) {
	var (
		validation *store.ValidationError
		notFound   *store.NotFoundError
		authz      *store.AuthorizationError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Msg})
	case errors.As(err, &authz):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authz.Msg})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,   // Request method
			"path":   c.Request.URL.Path, // Request path
			"error":  err.Error(),        // Error message
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
