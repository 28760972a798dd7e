package database

import (
	"encoding/json"

	"kurator/config"
	"kurator/internal/catalog"
	"kurator/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Single writer: SQLite serializes writes anyway, so one connection
	// avoids SQLITE_BUSY under concurrent updates.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Click{},
		&models.CourseCache{},
	)
}

// SeedCourseCache refreshes the read-only courses_cache table from the
// static catalog. The table is never written by anything else.
func SeedCourseCache(db *gorm.DB, cat *catalog.Catalog) error {
	for _, category := range cat.Categories() {
		for _, course := range cat.ByCategory(category) {
			data, err := json.Marshal(course)
			if err != nil {
				return err
			}
			row := models.CourseCache{
				ID:       course.ID,
				Title:    course.Title,
				Platform: course.Platform,
				Category: course.Category,
				Data:     string(data),
			}
			if err := db.Save(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
