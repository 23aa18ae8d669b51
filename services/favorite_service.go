package services

import (
	"fmt"

	"github.com/mniTejaswini/recipe-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// List returns the user's favorites, newest first.
func (s *FavoriteService) List(userID uint) ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Add upserts on the (user_id, meal_id) unique pair. On conflict only the
// display name is refreshed; thumb, category and area keep their first value.
func (s *FavoriteService) Add(userID uint, mealID, mealName, mealThumb, category, area string) error {
	fav := models.Favorite{
		UserID:    userID,
		MealID:    mealID,
		MealName:  mealName,
		MealThumb: mealThumb,
		Category:  category,
		Area:      area,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "meal_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"meal_name"}),
	}).Create(&fav).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes the matching favorite. Removing a pair that does not exist
// is not an error; zero rows affected counts as success.
func (s *FavoriteService) Remove(userID uint, mealID string) error {
	err := s.db.
		Where("user_id = ? AND meal_id = ?", userID, mealID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
