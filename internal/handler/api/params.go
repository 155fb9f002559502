package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// listParams extracts keyset pagination query parameters. Limit
// normalization happens in the query layer.
func listParams(c *gin.Context) (afterCursor string, limit int) {
	afterCursor = c.Query("after")
	limit, _ = strconv.Atoi(c.Query("limit"))
	return afterCursor, limit
}
