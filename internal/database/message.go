package database

import (
	"time"

	"github.com/playverse/backend/internal/models"
	"gorm.io/gorm/clause"
)

// SaveMessage is an atomic find-or-create keyed on messageId. The insert is
// ON CONFLICT DO NOTHING against the primary key, so two concurrent appends
// with the same id produce exactly one row; the stored row is returned in
// either case and never rewritten.
func (d *Database) SaveMessage(msg *models.Message) (*models.Message, error) {
	res := d.db.Clauses(clause.OnConflict{DoNothing: true}).Create(msg)
	if res.Error != nil {
		return nil, res.Error
	}

	var stored models.Message
	if err := d.db.First(&stored, "message_id = ?", msg.MessageID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetRoomMessages returns the room's broadcast history, newest first. A
// non-nil before restricts to messages strictly older than it.
func (d *Database) GetRoomMessages(roomID string, limit int, before *time.Time) ([]models.Message, error) {
	query := d.db.Where("room_id = ? AND is_private = ?", roomID, false)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	var messages []models.Message
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetPrivateMessages returns the two-party thread between userA and userB,
// newest first, regardless of direction.
func (d *Database) GetPrivateMessages(userA, userB string, limit int, before *time.Time) ([]models.Message, error) {
	query := d.db.Where(
		"is_private = ? AND ((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?))",
		true, userA, userB, userB, userA,
	)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	var messages []models.Message
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
