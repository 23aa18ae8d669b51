package controllers

import (
	"net/http"

	"github.com/mniTejaswini/recipe-app/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// GET /api/favorites?user_id=1
func (ctl *FavoriteController) List(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	favorites, err := ctl.favorites.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// POST /api/favorites  {"meal_id": "52772", "meal_name": "...", ...}
func (ctl *FavoriteController) Add(c *gin.Context) {
	var body struct {
		UserID    *uint  `json:"user_id"`
		MealID    string `json:"meal_id"`
		MealName  string `json:"meal_name"`
		MealThumb string `json:"meal_thumb"`
		Category  string `json:"category"`
		Area      string `json:"area"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.MealID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_id is required"})
		return
	}

	userID := uint(defaultUserID)
	if body.UserID != nil {
		userID = *body.UserID
	}

	if err := ctl.favorites.Add(userID, body.MealID, body.MealName, body.MealThumb, body.Category, body.Area); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites", "meal_id": body.MealID})
}

// DELETE /api/favorites/:mealId?user_id=1 — deleting a favorite that does
// not exist still succeeds.
func (ctl *FavoriteController) Remove(c *gin.Context) {
	mealID := c.Param("mealId")
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	if err := ctl.favorites.Remove(userID, mealID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "meal_id": mealID})
}
