package service

import (
	"errors"
	"log"
	"time"

	"kurator/internal/domain"
	"kurator/internal/models"
	"kurator/internal/repository"

	"gorm.io/gorm"
)

const (
	recentClicksLimit = 5
	activeWindow      = 7 * 24 * time.Hour
)

// UserStats is the per-user aggregate view.
type UserStats struct {
	User           models.User                 `json:"user"`
	PlatformsCount int64                       `json:"platforms_count"`
	TotalClicks    int64                       `json:"total_clicks"`
	ByPlatform     []repository.PlatformClicks `json:"by_platform"`
	Recent         []repository.RecentClick    `json:"recent"`
}

// GlobalStats is the admin-facing aggregate view.
type GlobalStats struct {
	TotalUsers    int64                       `json:"total_users"`
	TotalClicks   int64                       `json:"total_clicks"`
	ActiveUsers7d int64                       `json:"active_users_7d"`
	ByPlatform    []repository.PlatformClicks `json:"by_platform"`
	Daily         []repository.DailyClicks    `json:"daily"`
}

// ClickEvent is published to the live feed for each recorded click.
type ClickEvent struct {
	TelegramID int64     `json:"telegram_id"`
	Platform   string    `json:"platform"`
	CourseID   *int      `json:"course_id"`
	ClickedAt  time.Time `json:"clicked_at"`
}

// Broadcaster receives click events for live observers. May be nil.
type Broadcaster interface {
	BroadcastAll(payload interface{})
}

// TrackerService owns the click ledger and its aggregates.
type TrackerService struct {
	users  *repository.UserRepository
	clicks *repository.ClickRepository
	feed   Broadcaster
}

func NewTrackerService(users *repository.UserRepository, clicks *repository.ClickRepository, feed Broadcaster) *TrackerService {
	return &TrackerService{users: users, clicks: clicks, feed: feed}
}

// RecordClick attributes a click to an already-registered user. Unknown
// platforms and unknown users leave the ledger untouched.
func (s *TrackerService) RecordClick(telegramID int64, platform string, courseID *int) Outcome {
	if !domain.ValidPlatform(platform) {
		log.Printf("[tracker] unknown platform %q", platform)
		return OutcomeInvalidInput
	}
	u, err := s.users.GetByTelegramID(telegramID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[tracker] click from unregistered user %d", telegramID)
		return OutcomeNotFound
	}
	if err != nil {
		log.Printf("[tracker] user lookup %d: %v", telegramID, err)
		return OutcomeStoreUnavailable
	}
	if err := s.clicks.Record(u.ID, platform, courseID); err != nil {
		log.Printf("[tracker] record click user=%d platform=%s: %v", telegramID, platform, err)
		return OutcomeStoreUnavailable
	}
	log.Printf("[tracker] click user=%d platform=%s course=%v", telegramID, platform, courseID)
	if s.feed != nil {
		s.feed.BroadcastAll(ClickEvent{
			TelegramID: telegramID,
			Platform:   platform,
			CourseID:   courseID,
			ClickedAt:  time.Now(),
		})
	}
	return OutcomeOK
}

// UserStats returns the user's profile with aggregate click data, or
// OutcomeNotFound for users that never registered.
func (s *TrackerService) UserStats(telegramID int64) (*UserStats, Outcome) {
	u, err := s.users.GetByTelegramID(telegramID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, OutcomeNotFound
	}
	if err != nil {
		log.Printf("[tracker] stats user lookup %d: %v", telegramID, err)
		return nil, OutcomeStoreUnavailable
	}

	stats := &UserStats{User: *u}
	if stats.TotalClicks, err = s.clicks.CountForUser(u.ID); err != nil {
		log.Printf("[tracker] stats total %d: %v", telegramID, err)
		return nil, OutcomeStoreUnavailable
	}
	if stats.PlatformsCount, err = s.clicks.CountDistinctPlatforms(u.ID); err != nil {
		log.Printf("[tracker] stats platforms %d: %v", telegramID, err)
		return nil, OutcomeStoreUnavailable
	}
	if stats.ByPlatform, err = s.clicks.PlatformBreakdown(u.ID); err != nil {
		log.Printf("[tracker] stats breakdown %d: %v", telegramID, err)
		return nil, OutcomeStoreUnavailable
	}
	if stats.Recent, err = s.clicks.Recent(u.ID, recentClicksLimit); err != nil {
		log.Printf("[tracker] stats recent %d: %v", telegramID, err)
		return nil, OutcomeStoreUnavailable
	}
	return stats, OutcomeOK
}

// GlobalStats returns the cross-user aggregates for the admin surface.
func (s *TrackerService) GlobalStats() (*GlobalStats, Outcome) {
	var (
		stats GlobalStats
		err   error
	)
	if stats.TotalUsers, err = s.users.CountAll(); err != nil {
		log.Printf("[tracker] global users: %v", err)
		return nil, OutcomeStoreUnavailable
	}
	if stats.TotalClicks, err = s.clicks.CountAll(); err != nil {
		log.Printf("[tracker] global clicks: %v", err)
		return nil, OutcomeStoreUnavailable
	}
	since := time.Now().Add(-activeWindow)
	if stats.ActiveUsers7d, err = s.users.CountActiveSince(since); err != nil {
		log.Printf("[tracker] global active: %v", err)
		return nil, OutcomeStoreUnavailable
	}
	if stats.ByPlatform, err = s.clicks.GlobalPlatformBreakdown(); err != nil {
		log.Printf("[tracker] global breakdown: %v", err)
		return nil, OutcomeStoreUnavailable
	}
	if stats.Daily, err = s.clicks.DailyHistogram(since); err != nil {
		log.Printf("[tracker] global histogram: %v", err)
		return nil, OutcomeStoreUnavailable
	}
	return &stats, OutcomeOK
}
