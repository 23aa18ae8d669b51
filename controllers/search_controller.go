package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mniTejaswini/recipe-app/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	meals   *services.MealDBService
	history *services.HistoryService
}

func NewSearchController(meals *services.MealDBService, history *services.HistoryService) *SearchController {
	return &SearchController{meals: meals, history: history}
}

// GET /api/search/ingredient?ingredient=chicken
func (ctl *SearchController) ByIngredient(c *gin.Context) {
	ctl.search(c, "ingredient", c.Query("ingredient"), "Ingredient parameter is required", ctl.meals.SearchByIngredient)
}

// GET /api/search/name?name=arrabiata
func (ctl *SearchController) ByName(c *gin.Context) {
	ctl.search(c, "name", c.Query("name"), "Name parameter is required", ctl.meals.SearchByName)
}

// GET /api/search/category?category=Seafood
func (ctl *SearchController) ByCategory(c *gin.Context) {
	ctl.search(c, "category", c.Query("category"), "Category parameter is required", ctl.meals.SearchByCategory)
}

// search validates the term, proxies the upstream lookup and passes the JSON
// through. History logging is best-effort and never fails the request.
func (ctl *SearchController) search(c *gin.Context, searchType, term, missingMsg string, lookup func(string) (json.RawMessage, error)) {
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMsg})
		return
	}
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}

	payload, err := lookup(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.history.Log(userID, term, searchType, services.MealCount(payload)); err != nil {
		slog.Warn("could not log search history",
			"user_id", userID,
			"search_type", searchType,
			"error", err,
		)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
