package models

import "time"

// Click is one row of the append-only ledger. Rows are never mutated; they
// disappear only via cascade when the owning user is deleted.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Platform  string    `gorm:"size:32;not null;index" json:"platform"`
	CourseID  *int      `json:"course_id"`
	ClickedAt time.Time `gorm:"not null;index" json:"clicked_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Click) TableName() string { return "clicks" }
