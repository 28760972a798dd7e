package repository

import (
	"time"

	"kurator/internal/models"

	"gorm.io/gorm"
)

// PlatformClicks is one row of a per-platform breakdown.
type PlatformClicks struct {
	Platform string `json:"platform"`
	Clicks   int64  `json:"clicks"`
}

// RecentClick is one entry of a user's recent click history.
type RecentClick struct {
	Platform  string    `json:"platform"`
	CourseID  *int      `json:"course_id"`
	ClickedAt time.Time `json:"clicked_at"`
}

// DailyClicks is one day of the click histogram.
type DailyClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Record appends a ledger row and applies the user-side effects in a single
// transaction: insert, lifetime counter increment, activity refresh. Either
// all three land or none do.
func (r *ClickRepository) Record(userID uint, platform string, courseID *int) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		click := models.Click{
			UserID:    userID,
			Platform:  platform,
			CourseID:  courseID,
			ClickedAt: now,
		}
		if err := tx.Create(&click).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"clicks_count": gorm.Expr("clicks_count + 1"),
				"last_active":  now,
			}).Error
	})
}

// PlatformBreakdown returns the user's clicks grouped by platform, most
// clicked first.
func (r *ClickRepository) PlatformBreakdown(userID uint) ([]PlatformClicks, error) {
	var rows []PlatformClicks
	err := r.db.Model(&models.Click{}).
		Select("platform, COUNT(*) AS clicks").
		Where("user_id = ?", userID).
		Group("platform").
		Order("clicks DESC").
		Scan(&rows).Error
	return rows, err
}

// Recent returns the user's latest clicks, newest first.
func (r *ClickRepository) Recent(userID uint, limit int) ([]RecentClick, error) {
	var rows []RecentClick
	err := r.db.Model(&models.Click{}).
		Select("platform, course_id, clicked_at").
		Where("user_id = ?", userID).
		Order("clicked_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ClickRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Click{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountDistinctPlatforms counts the platforms the user has clicked at least once.
func (r *ClickRepository) CountDistinctPlatforms(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Click{}).
		Where("user_id = ?", userID).
		Distinct("platform").
		Count(&count).Error
	return count, err
}

func (r *ClickRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Click{}).Count(&count).Error
	return count, err
}

// GlobalPlatformBreakdown returns click totals per platform across all
// users, most clicked first.
func (r *ClickRepository) GlobalPlatformBreakdown() ([]PlatformClicks, error) {
	var rows []PlatformClicks
	err := r.db.Model(&models.Click{}).
		Select("platform, COUNT(*) AS clicks").
		Group("platform").
		Order("clicks DESC").
		Scan(&rows).Error
	return rows, err
}

// DailyHistogram returns per-day click counts for the trailing window,
// newest day first.
func (r *ClickRepository) DailyHistogram(since time.Time) ([]DailyClicks, error) {
	var rows []DailyClicks
	err := r.db.Raw(`
		SELECT DATE(clicked_at) AS date, COUNT(*) AS clicks
		FROM clicks
		WHERE clicked_at > ?
		GROUP BY DATE(clicked_at)
		ORDER BY date DESC
	`, since).Scan(&rows).Error
	return rows, err
}
