package models

import "time"

// User is created on first contact with the bot and updated on every
// subsequent interaction. TelegramID is the natural key; RefCode is assigned
// once at registration and never changes.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TelegramID   int64     `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username     string    `gorm:"size:64" json:"username"`
	FirstName    string    `gorm:"size:128" json:"first_name"`
	LastName     string    `gorm:"size:128" json:"last_name"`
	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`
	LastActive   time.Time `gorm:"not null;index" json:"last_active"`
	RefCode      string    `gorm:"uniqueIndex;size:16;not null" json:"ref_code"`
	// ReferrerID holds the Telegram id of the user who referred this one.
	ReferrerID  *int64 `gorm:"index" json:"referrer_id"`
	ClicksCount int64  `gorm:"not null;default:0" json:"clicks_count"`
}

func (User) TableName() string { return "users" }
