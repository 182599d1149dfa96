package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/jamil/mission-control-api/internal/errors"
)

// parseID extracts the :id path parameter. On a malformed id it writes a 400
// response and reports false.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
