package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Request ID generation
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Get incoming request ID
		if id == "" {
			id = uuid.NewString() // Assign a fresh ID
		}
		c.Set("requestID", id)        // Store request ID in context
		c.Header(RequestIDHeader, id) // Echo it back to the caller
		c.Next()                      // Proceed to the next handler
	}
}
