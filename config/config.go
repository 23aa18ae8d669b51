package config

import (
	"fmt"
	"os"

	"github.com/mniTejaswini/recipe-app/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Config holds runtime settings for the recipe backend.
// Every field has a local-development default and can be overridden via
// environment variables (optionally loaded from a .env file).
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort    string
	MealDBBaseURL string
}

const defaultMealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Load builds the Config from the environment. A missing .env file is fine;
// defaults target a local MySQL instance.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:        envOr("DB_HOST", "localhost"),
		DBPort:        envOr("DB_PORT", "3306"),
		DBUser:        envOr("DB_USER", "root"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        envOr("DB_NAME", "recipe_db"),
		ServerPort:    envOr("SERVER_PORT", "5000"),
		MealDBBaseURL: envOr("MEALDB_BASE_URL", defaultMealDBBaseURL),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ConnectDB opens the pooled GORM handle described by cfg.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema and seeds the default user so the documented
// user_id=1 fallback is usable without an account flow.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Favorite{},
		&models.SearchHistory{},
		&models.RecipeCache{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	demo := models.User{Username: "demo", Email: "demo@example.com"}
	if err := db.Where("username = ?", demo.Username).FirstOrCreate(&demo).Error; err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}
	return nil
}
