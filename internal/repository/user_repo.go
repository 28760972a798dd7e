package repository

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"kurator/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

const refCodeAttempts = 10

// newRefCode derives an 8-character code from the telegram id and the current
// clock. Uniqueness is enforced by the index on users.ref_code, not by the
// generator.
func newRefCode(telegramID int64) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%d%d", telegramID, time.Now().UnixNano())))
	return hex.EncodeToString(sum[:])[:8]
}

// GetOrCreate returns the user with the given telegram id, creating it on
// first contact. The ref code is generated, inserted under the unique index
// and regenerated on conflict. A lost insert race on telegram_id resolves to
// the row the winning writer created. The bool reports whether a row was
// created by this call.
func (r *UserRepository) GetOrCreate(telegramID int64, username, firstName, lastName string, referrerID *int64) (*models.User, bool, error) {
	var existing models.User
	err := r.db.Where("telegram_id = ?", telegramID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	now := time.Now()
	for i := 0; i < refCodeAttempts; i++ {
		u := models.User{
			TelegramID:   telegramID,
			Username:     username,
			FirstName:    firstName,
			LastName:     lastName,
			RegisteredAt: now,
			LastActive:   now,
			RefCode:      newRefCode(telegramID),
			ReferrerID:   referrerID,
		}
		if err := r.db.Create(&u).Error; err == nil {
			return &u, true, nil
		}
		// Either a ref_code collision or a concurrent first registration hit
		// the telegram_id index. In the second case the other writer's row
		// wins and we return it.
		ferr := r.db.Where("telegram_id = ?", telegramID).First(&existing).Error
		if ferr == nil {
			return &existing, false, nil
		}
		if !errors.Is(ferr, gorm.ErrRecordNotFound) {
			return nil, false, ferr
		}
	}
	return nil, false, fmt.Errorf("no unique ref code after %d attempts", refCodeAttempts)
}

// TouchActivity refreshes last_active. Unknown users are a silent no-op.
func (r *UserRepository) TouchActivity(telegramID int64) error {
	return r.db.Model(&models.User{}).
		Where("telegram_id = ?", telegramID).
		UpdateColumn("last_active", time.Now()).Error
}

func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	var u models.User
	if err := r.db.Where("telegram_id = ?", telegramID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByRefCode(code string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("ref_code = ?", code).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Exists reports whether a user with the given telegram id is registered.
func (r *UserRepository) Exists(telegramID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("telegram_id = ?", telegramID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountActiveSince counts distinct users whose last activity is after t.
func (r *UserRepository) CountActiveSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("last_active > ?", t).
		Count(&count).Error
	return count, err
}
