package database

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"kurator/config"
	"kurator/internal/catalog"
	"kurator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCourseCache(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")}
	db, err := NewDB(cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	cat := catalog.New()
	require.NoError(t, SeedCourseCache(db, cat))

	var count int64
	require.NoError(t, db.Model(&models.CourseCache{}).Count(&count).Error)
	assert.Equal(t, int64(cat.Len()), count)

	var row models.CourseCache
	require.NoError(t, db.First(&row, 1).Error)
	var course catalog.Course
	require.NoError(t, json.Unmarshal([]byte(row.Data), &course))
	assert.Equal(t, row.Title, course.Title)
	assert.Equal(t, row.Platform, course.Platform)

	// Re-seeding is idempotent.
	require.NoError(t, SeedCourseCache(db, cat))
	require.NoError(t, db.Model(&models.CourseCache{}).Count(&count).Error)
	assert.Equal(t, int64(cat.Len()), count)
}
