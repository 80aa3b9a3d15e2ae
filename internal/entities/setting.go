package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// SettingKeyLibraryBooks holds the JSON-encoded ordered book array.
	SettingKeyLibraryBooks = "library_books"

	// Streak settings
	SettingKeyStreakDays      = "streak_days"
	SettingKeyLastReadingDate = "last_reading_date"
)
