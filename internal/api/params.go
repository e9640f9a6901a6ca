package api

import (
	"strconv" // String conversion

	"investment_tracker/internal/store" // Error kinds

	"github.com/gin-gonic/gin" // Gin web framework
)

// pathID parses the :id path parameter. Ids that cannot name a row are reported as not found.
func pathID(c *gin.Context, notFound string) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || v == 0 {
		return 0, &store.NotFoundError{Msg: notFound}
	}
	return uint(v), nil
}
