package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// There is no authentication; user_id defaults to the seeded demo user.
const defaultUserID = 1

// userIDQuery reads the user_id query parameter, defaulting to 1 when
// absent. On a non-numeric value it writes a 400 and reports false.
func userIDQuery(c *gin.Context) (uint, bool) {
	raw := c.DefaultQuery("user_id", strconv.Itoa(defaultUserID))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a number"})
		return 0, false
	}
	return uint(id), true
}
