package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET / — confirms the backend is up.
func Index(c *gin.Context) {
	c.String(http.StatusOK, "recipe backend is running")
}

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
