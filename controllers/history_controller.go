package controllers

import (
	"net/http"
	"strconv"

	"github.com/mniTejaswini/recipe-app/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	history *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{history: history}
}

// GET /api/history?user_id=1&limit=10
func (ctl *HistoryController) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
		return
	}

	history, err := ctl.history.List(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
