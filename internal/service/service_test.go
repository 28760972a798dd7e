package service

import (
	"path/filepath"
	"testing"

	"kurator/internal/models"
	"kurator/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Click{}))
	return db
}

func newServices(t *testing.T) (*gorm.DB, *RegistryService, *TrackerService) {
	t.Helper()
	db := testDB(t)
	users := repository.NewUserRepository(db)
	clicks := repository.NewClickRepository(db)
	return db, NewRegistryService(users), NewTrackerService(users, clicks, nil)
}
