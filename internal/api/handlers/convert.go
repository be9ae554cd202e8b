package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// defaultPagination normalizes page/perPage from query params
// (0 = not specified).
func defaultPagination(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

// intQuery parses an integer query parameter, returning 0 when absent
// or malformed.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// boolQuery parses a boolean query parameter, false when absent.
func boolQuery(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}
