package repo

import (
	"errors"

	"gorm.io/gorm"

	"medora-backend/app/models"
)

var ErrDuplicateUsername = errors.New("duplicate username")

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// FindByUsername does an exact, case-sensitive lookup. Absent users are
// (nil, nil); errors are store failures only.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persists u. The unique index on username is the authoritative
// guard against concurrent duplicates; a violation surfaces as
// ErrDuplicateUsername regardless of any earlier existence check.
func (r *UserRepository) Create(u *models.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}
