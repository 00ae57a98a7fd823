package models

import "time"

// DailyProgress is a history snapshot of a day's totals, written every time
// the summary for that day is computed. Summaries are never read from it.
type DailyProgress struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"type:varchar(128);uniqueIndex:idx_progress_user_date;not null" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);uniqueIndex:idx_progress_user_date;not null" json:"date"`
	Totals    Nutrients `gorm:"embedded" json:"totals"`
	Goals     Nutrients `gorm:"embedded;embeddedPrefix:goal_" json:"goals"`
	UpdatedAt time.Time `json:"updated_at"`
}
