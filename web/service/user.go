package service

import (
	"strings"
	"time"

	"quote-hunt/database"
	"quote-hunt/database/model"

	"gorm.io/gorm/clause"
)

// UserService manages hunt participants. Registration is an idempotent
// upsert keyed by username.
type UserService struct{}

// Register creates the user on first call and returns the existing record on
// every later call. RegisteredAt is never changed by re-registration. The
// conflict clause makes concurrent first registrations safe without
// application-level locking.
func (s *UserService) Register(username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 2 {
		return nil, newValidationError("username must be at least 2 characters")
	}

	db := database.GetDB()
	user := &model.User{
		Username:     username,
		RegisteredAt: time.Now(),
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error
	if err != nil {
		return nil, err
	}

	// Read back the authoritative row; on conflict the insert above was a
	// no-op and the original RegisteredAt must be returned.
	existing := &model.User{}
	err = db.Model(model.User{}).
		Where("username = ?", username).
		First(existing).
		Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// GetUser returns the user with the given username.
func (s *UserService) GetUser(username string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
