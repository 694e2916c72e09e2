package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Coins        int       `gorm:"not null;default:0"`
	CreatedAt    time.Time

	// Rooms this user created, and rooms the user may re-enter without a
	// password. A room can appear in both.
	CreatedRooms []Room `gorm:"many2many:user_created_rooms"`
	AllowedRooms []Room `gorm:"many2many:user_allowed_rooms"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
