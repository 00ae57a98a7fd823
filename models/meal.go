package models

import "time"

// Meal is one logged meal: the raw text plus the resolved foods and totals.
type Meal struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserID         string     `gorm:"type:varchar(128);index:idx_meals_user_date;not null" json:"user_id"`
	Date           string     `gorm:"type:varchar(10);index:idx_meals_user_date;not null" json:"date"` // YYYY-MM-DD
	FoodItems      string     `gorm:"type:text" json:"food_items"`
	TotalNutrients Nutrients  `gorm:"embedded;embeddedPrefix:total_" json:"total_nutrients"`
	Foods          []MealFood `gorm:"constraint:OnDelete:CASCADE" json:"foods"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// MealFood stores the nutrition snapshot of a single resolved item.
type MealFood struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	MealID    string    `gorm:"type:varchar(36);index;not null" json:"-"`
	Position  int       `json:"-"`
	Item      string    `json:"item"`
	Nutrients Nutrients `gorm:"embedded" json:"nutrients"`
}
