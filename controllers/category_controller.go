package controllers

import (
	"net/http"

	"github.com/mniTejaswini/recipe-app/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	meals *services.MealDBService
}

func NewCategoryController(meals *services.MealDBService) *CategoryController {
	return &CategoryController{meals: meals}
}

// GET /api/categories — pass-through of TheMealDB's category list.
func (ctl *CategoryController) List(c *gin.Context) {
	payload, err := ctl.meals.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
