package controllers

import (
	"log/slog"
	"net/http"

	"github.com/mniTejaswini/recipe-app/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	meals *services.MealDBService
	cache *services.CacheService
}

func NewRecipeController(meals *services.MealDBService, cache *services.CacheService) *RecipeController {
	return &RecipeController{meals: meals, cache: cache}
}

// GET /api/recipe/:mealId — serves the cached payload when fresh, otherwise
// fetches from TheMealDB and caches the result if it contains data. Cache
// failures fall back to the upstream path rather than failing the request.
func (ctl *RecipeController) GetByID(c *gin.Context) {
	mealID := c.Param("mealId")

	cached, hit, err := ctl.cache.Get(mealID)
	if err != nil {
		slog.Warn("recipe cache read failed", "meal_id", mealID, "error", err)
	}
	if hit {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	payload, err := ctl.meals.LookupByID(mealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if services.MealCount(payload) > 0 {
		if err := ctl.cache.Put(mealID, payload); err != nil {
			slog.Warn("recipe cache write failed", "meal_id", mealID, "error", err)
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
