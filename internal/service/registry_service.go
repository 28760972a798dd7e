package service

import (
	"errors"
	"log"

	"kurator/internal/models"
	"kurator/internal/repository"

	"gorm.io/gorm"
)

// RegistryService owns user identities and referral codes.
type RegistryService struct {
	users *repository.UserRepository
}

func NewRegistryService(users *repository.UserRepository) *RegistryService {
	return &RegistryService{users: users}
}

// Register ensures a user row exists for the given telegram account and
// returns its referral code. Repeat calls never create a second row and
// return the same code. A supplied referrer id must resolve to a registered
// user; otherwise it is dropped and the user is created without one.
func (s *RegistryService) Register(telegramID int64, username, firstName, lastName string, referrerID *int64) (string, Outcome) {
	if referrerID != nil {
		switch ok, err := s.resolveReferrer(telegramID, *referrerID); {
		case err != nil:
			log.Printf("[registry] referrer lookup for %d: %v", telegramID, err)
			referrerID = nil
		case !ok:
			referrerID = nil
		}
	}
	u, created, err := s.users.GetOrCreate(telegramID, username, firstName, lastName, referrerID)
	if err != nil {
		log.Printf("[registry] register %d: %v", telegramID, err)
		return "", OutcomeStoreUnavailable
	}
	if created {
		log.Printf("[registry] new user %d (%s)", telegramID, username)
	}
	return u.RefCode, OutcomeOK
}

func (s *RegistryService) resolveReferrer(telegramID, referrerID int64) (bool, error) {
	if referrerID == telegramID {
		log.Printf("[registry] self-referral from %d ignored", telegramID)
		return false, nil
	}
	ok, err := s.users.Exists(referrerID)
	if err != nil {
		return false, err
	}
	if !ok {
		log.Printf("[registry] unknown referrer %d ignored", referrerID)
	}
	return ok, nil
}

// TouchActivity refreshes the user's last-activity timestamp. Unknown users
// are a silent no-op; store faults are logged and swallowed.
func (s *RegistryService) TouchActivity(telegramID int64) {
	if err := s.users.TouchActivity(telegramID); err != nil {
		log.Printf("[registry] touch %d: %v", telegramID, err)
	}
}

// Profile returns the user's identity row.
func (s *RegistryService) Profile(telegramID int64) (*models.User, Outcome) {
	u, err := s.users.GetByTelegramID(telegramID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, OutcomeNotFound
	}
	if err != nil {
		log.Printf("[registry] profile %d: %v", telegramID, err)
		return nil, OutcomeStoreUnavailable
	}
	return u, OutcomeOK
}
