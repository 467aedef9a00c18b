package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultSkip is the offset applied when the query omits skip
	DefaultSkip = 0
	// DefaultLimit is the page size applied when the query omits limit
	DefaultLimit = 100
)

// ParseSkipLimit extracts the skip/limit pagination parameters from the request
// query. Negative or malformed values fall back to the defaults (skip=0, limit=100),
// so a list call always receives a well-formed contiguous slice request.
func ParseSkipLimit(c *gin.Context) (skip, limit int) {
	skipStr := c.DefaultQuery("skip", strconv.Itoa(DefaultSkip))
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		skip = DefaultSkip
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		limit = DefaultLimit
	}

	return skip, limit
}
