package models

import "time"

// Role is the closed set of account kinds. Anything else is rejected at
// the HTTP boundary before it can reach the store.
type Role string

const (
	RoleElderly   Role = "elderly"
	RoleCaregiver Role = "caregiver"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleElderly, RoleCaregiver:
		return Role(s), true
	}
	return "", false
}

// User is created once at signup and never updated afterwards.
// LinkedElderlyUsername is a by-username reference with no referential
// integrity: it may point at a username that does not (yet) exist.
type User struct {
	ID                    uint   `gorm:"primaryKey"`
	Username              string `gorm:"uniqueIndex;size:191;not null"`
	HashedPassword        string `gorm:"size:255;not null"`
	Role                  Role   `gorm:"size:32;not null"`
	LinkedElderlyUsername string `gorm:"size:191"`
	CreatedAt             time.Time
}
