package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once stored. MessageID is caller-supplied and acts as
// the idempotency key: the primary key constraint is what makes concurrent
// duplicate appends collapse to a single row.
type Message struct {
	MessageID   string     `gorm:"primaryKey"`
	RoomID      *uuid.UUID `gorm:"type:uuid;index:idx_messages_room_created,priority:1"`
	SenderID    string     `gorm:"index:idx_messages_private_pair,priority:1"`
	SenderName  string     `gorm:"not null"`
	Text        string     `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"index:idx_messages_room_created,priority:2;index:idx_messages_private_pair,priority:3"`
	IsPrivate   bool       `gorm:"not null;default:false;index"`
	RecipientID string     `gorm:"index:idx_messages_private_pair,priority:2"`
}
