package models

import "time"

// Cached upstream recipe payload. One row per meal; freshness is evaluated
// at read time, stale rows stay until overwritten.
type RecipeCache struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	MealID     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"meal_id"`
	RecipeData string    `gorm:"type:json;not null" json:"-"`
	CachedAt   time.Time `json:"cached_at"`
}

func (RecipeCache) TableName() string {
	return "recipe_cache"
}
