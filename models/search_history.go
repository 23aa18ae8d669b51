package models

import "time"

// Append-only log of user searches.
type SearchHistory struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       uint      `gorm:"not null;index:idx_history_user_created,priority:1" json:"-"`
	SearchTerm   string    `gorm:"size:255;not null" json:"search_term"`
	SearchType   string    `gorm:"size:50;not null" json:"search_type"` // "ingredient" | "name" | "category"
	ResultsCount int       `gorm:"default:0" json:"results_count"`
	CreatedAt    time.Time `gorm:"index:idx_history_user_created,priority:2,sort:desc" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}
