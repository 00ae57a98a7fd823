package models

import "time"

// User is the profile created on first token verification.
type User struct {
	UID            string     `gorm:"type:varchar(128);primaryKey" json:"uid"`
	Email          string     `gorm:"index" json:"email"`
	Name           string     `json:"name"`
	Picture        string     `json:"picture"`
	NutritionGoals Nutrients  `gorm:"embedded;embeddedPrefix:goal_" json:"nutrition_goals"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

// HasGoals reports whether any goal has been set.
func (u *User) HasGoals() bool {
	return u.NutritionGoals != (Nutrients{})
}
