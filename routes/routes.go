package routes

import (
	"github.com/mniTejaswini/recipe-app/config"
	"github.com/mniTejaswini/recipe-app/controllers"
	"github.com/mniTejaswini/recipe-app/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // frontend runs on a different origin

	meals := services.NewMealDBService(cfg.MealDBBaseURL)
	cache := services.NewCacheService(db)
	favorites := services.NewFavoriteService(db)
	history := services.NewHistoryService(db)

	searchCtl := controllers.NewSearchController(meals, history)
	recipeCtl := controllers.NewRecipeController(meals, cache)
	favoriteCtl := controllers.NewFavoriteController(favorites)
	historyCtl := controllers.NewHistoryController(history)
	categoryCtl := controllers.NewCategoryController(meals)

	r.GET("/", controllers.Index)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)

		api.GET("/search/ingredient", searchCtl.ByIngredient)
		api.GET("/search/name", searchCtl.ByName)
		api.GET("/search/category", searchCtl.ByCategory)

		api.GET("/recipe/:mealId", recipeCtl.GetByID)
		api.GET("/categories", categoryCtl.List)

		api.GET("/favorites", favoriteCtl.List)
		api.POST("/favorites", favoriteCtl.Add)
		api.DELETE("/favorites/:mealId", favoriteCtl.Remove)

		api.GET("/history", historyCtl.List)
	}

	return r
}
