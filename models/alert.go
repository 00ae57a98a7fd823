package models

import "time"

const AlertGoalReached = "goal_reached"

type Alert struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(128);index" json:"user_id"`
	Type      string    `gorm:"size:20" json:"type"`
	Nutrient  string    `gorm:"size:20" json:"nutrient,omitempty"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
