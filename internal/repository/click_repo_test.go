package repository

import (
	"testing"
	"time"

	"kurator/internal/domain"
	"kurator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAppliesAllEffects(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	clicks := NewClickRepository(db)

	u, _, err := users.GetOrCreate(1, "alice", "", "", nil)
	require.NoError(t, err)

	courseID := 5
	require.NoError(t, clicks.Record(u.ID, domain.PlatformSkillbox, &courseID))

	var rows []models.Click
	require.NoError(t, db.Where("user_id = ?", u.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.PlatformSkillbox, rows[0].Platform)
	require.NotNil(t, rows[0].CourseID)
	assert.Equal(t, 5, *rows[0].CourseID)

	refreshed, err := users.GetByTelegramID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), refreshed.ClicksCount)
	assert.WithinDuration(t, time.Now(), refreshed.LastActive, time.Minute)
}

func TestRecordFailureLeavesNoPartialState(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	clicks := NewClickRepository(db)

	u, _, err := users.GetOrCreate(1, "alice", "", "", nil)
	require.NoError(t, err)
	require.NoError(t, clicks.Record(u.ID, domain.PlatformSkillbox, nil))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assert.Error(t, clicks.Record(u.ID, domain.PlatformSkillbox, nil))
}

func TestPlatformBreakdownOrdering(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	clicks := NewClickRepository(db)

	u, _, err := users.GetOrCreate(1, "alice", "", "", nil)
	require.NoError(t, err)

	require.NoError(t, clicks.Record(u.ID, domain.PlatformSkillbox, nil))
	require.NoError(t, clicks.Record(u.ID, domain.PlatformSkillbox, nil))
	require.NoError(t, clicks.Record(u.ID, domain.PlatformGeekBrains, nil))

	rows, err := clicks.PlatformBreakdown(u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, PlatformClicks{Platform: domain.PlatformSkillbox, Clicks: 2}, rows[0])
	assert.Equal(t, PlatformClicks{Platform: domain.PlatformGeekBrains, Clicks: 1}, rows[1])

	total, err := clicks.CountForUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	distinct, err := clicks.CountDistinctPlatforms(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), distinct)
}

func TestRecentReturnsNewestFirstWithLimit(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	clicks := NewClickRepository(db)

	u, _, err := users.GetOrCreate(1, "alice", "", "", nil)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	platforms := []string{
		domain.PlatformSkillbox,
		domain.PlatformSkillFactory,
		domain.PlatformGeekBrains,
		domain.PlatformSkillbox,
		domain.PlatformSkillFactory,
		domain.PlatformGeekBrains,
		domain.PlatformSkillbox,
	}
	for i, platform := range platforms {
		row := models.Click{
			UserID:    u.ID,
			Platform:  platform,
			ClickedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&row).Error)
	}

	recent, err := clicks.Recent(u.ID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// Newest click was the last one inserted.
	assert.Equal(t, domain.PlatformSkillbox, recent[0].Platform)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].ClickedAt.After(recent[i-1].ClickedAt))
	}
}

func TestGlobalPlatformBreakdown(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	clicks := NewClickRepository(db)

	a, _, err := users.GetOrCreate(1, "a", "", "", nil)
	require.NoError(t, err)
	b, _, err := users.GetOrCreate(2, "b", "", "", nil)
	require.NoError(t, err)

	require.NoError(t, clicks.Record(a.ID, domain.PlatformGeekBrains, nil))
	require.NoError(t, clicks.Record(b.ID, domain.PlatformGeekBrains, nil))
	require.NoError(t, clicks.Record(b.ID, domain.PlatformSkillbox, nil))

	rows, err := clicks.GlobalPlatformBreakdown()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, PlatformClicks{Platform: domain.PlatformGeekBrains, Clicks: 2}, rows[0])

	total, err := clicks.CountAll()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestDailyHistogramWindowAndOrder(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	clicks := NewClickRepository(db)

	u, _, err := users.GetOrCreate(1, "alice", "", "", nil)
	require.NoError(t, err)

	now := time.Now()
	for _, offset := range []time.Duration{
		0,
		-24 * time.Hour,
		-24 * time.Hour,
		-9 * 24 * time.Hour, // outside the window
	} {
		row := models.Click{UserID: u.ID, Platform: domain.PlatformSkillbox, ClickedAt: now.Add(offset)}
		require.NoError(t, db.Create(&row).Error)
	}

	rows, err := clicks.DailyHistogram(now.Add(-7 * 24 * time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// SQLite's DATE() normalizes stored offsets to UTC.
	assert.Equal(t, now.UTC().Format("2006-01-02"), rows[0].Date)
	assert.Equal(t, int64(1), rows[0].Clicks)
	assert.Equal(t, int64(2), rows[1].Clicks)
	assert.Greater(t, rows[0].Date, rows[1].Date)
}
