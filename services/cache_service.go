package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mniTejaswini/recipe-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// How long a cached recipe payload stays fresh. Staleness is a read-side
// filter; stale rows remain until the next Put overwrites them.
const cacheFreshness = 7 * 24 * time.Hour

type CacheService struct {
	db *gorm.DB
}

func NewCacheService(db *gorm.DB) *CacheService {
	return &CacheService{db: db}
}

// Get returns the cached payload for mealID if a row exists and its
// cached_at is within the freshness window (strictly newer than now-7d).
// A missing or stale row is (nil, false, nil), not an error.
func (s *CacheService) Get(mealID string) (json.RawMessage, bool, error) {
	cutoff := time.Now().Add(-cacheFreshness)

	var row models.RecipeCache
	err := s.db.
		Where("meal_id = ? AND cached_at > ?", mealID, cutoff).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read recipe cache: %w", err)
	}
	return json.RawMessage(row.RecipeData), true, nil
}

// Put upserts the row for mealID, replacing both payload and timestamp.
// Last writer wins; there is no version check.
func (s *CacheService) Put(mealID string, payload json.RawMessage) error {
	row := models.RecipeCache{
		MealID:     mealID,
		RecipeData: string(payload),
		CachedAt:   time.Now(),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meal_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_data", "cached_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to cache recipe: %w", err)
	}
	return nil
}
