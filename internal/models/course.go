package models

import "time"

// CourseCache mirrors the static catalog into the store as read-only
// reference data. Data holds the full catalog entry as JSON.
type CourseCache struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Platform  string    `gorm:"size:32;not null" json:"platform"`
	Category  string    `gorm:"size:32;not null" json:"category"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CourseCache) TableName() string { return "courses_cache" }
