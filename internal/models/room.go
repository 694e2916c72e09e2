package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomType is a closed set of room classes, each with a hard capacity ceiling.
type RoomType string

const (
	RoomTypeCasual     RoomType = "casual"
	RoomTypeWork       RoomType = "work"
	RoomTypeConference RoomType = "conference"
)

var roomCapacity = map[RoomType]int{
	RoomTypeCasual:     10,
	RoomTypeWork:       50,
	RoomTypeConference: 200,
}

// ParseRoomType validates a wire value against the known room types.
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if _, ok := roomCapacity[t]; !ok {
		return "", fmt.Errorf("invalid room type %q", s)
	}
	return t, nil
}

// Capacity returns the ceiling for the type. A caller-requested size may lower
// the effective limit, never raise it above the ceiling.
func (t RoomType) Capacity() int {
	return roomCapacity[t]
}

type Room struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"uniqueIndex;not null"`
	Type         RoomType  `gorm:"type:text;not null"`
	MaxPlayers   int       `gorm:"not null"`
	IsPrivate    bool      `gorm:"not null;default:false"`
	PasswordHash string
	CreatedBy    uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time

	CurrentPlayers []User `gorm:"many2many:room_current_players"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
