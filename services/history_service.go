package services

import (
	"fmt"

	"github.com/mniTejaswini/recipe-app/models"

	"gorm.io/gorm"
)

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// List returns up to limit entries for the user, newest first.
func (s *HistoryService) List(userID uint, limit int) ([]models.SearchHistory, error) {
	history := make([]models.SearchHistory, 0)
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}
	return history, nil
}

// Log appends one history row. Callers on the search path treat a failure
// here as best-effort: it is logged and must never fail the search itself.
func (s *HistoryService) Log(userID uint, term, searchType string, resultsCount int) error {
	entry := models.SearchHistory{
		UserID:       userID,
		SearchTerm:   term,
		SearchType:   searchType,
		ResultsCount: resultsCount,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to log search history: %w", err)
	}
	return nil
}
