package models

import "time"

// A saved recipe. One row per (user, meal) pair; re-adding the same meal
// refreshes the display name instead of duplicating.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_meal" json:"-"`
	MealID    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_meal" json:"meal_id"`
	MealName  string    `gorm:"size:255" json:"meal_name"`
	MealThumb string    `gorm:"type:text" json:"meal_thumb"`
	Category  string    `gorm:"size:100" json:"category"`
	Area      string    `gorm:"size:100" json:"area"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
