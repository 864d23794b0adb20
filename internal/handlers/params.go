package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lily-salon/internal/httperr"
	"github.com/BruksfildServices01/lily-salon/internal/middleware"
)

// parseID reads a positive numeric path parameter. It writes the 404 and
// returns false when the value is not an id.
func parseID(c *gin.Context, name, notFoundCode string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, notFoundCode, "Not found.")
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	id, _ := c.Get(middleware.ContextUserID)
	uid, _ := id.(uint)
	return uid
}
