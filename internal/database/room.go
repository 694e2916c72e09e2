package database

import (
	"errors"

	"github.com/playverse/backend/internal/apperr"
	"github.com/playverse/backend/internal/models"
	"gorm.io/gorm"
)

// CreateRoom inserts a new room. The unique index on name is the arbiter for
// concurrent creations with the same name: exactly one insert wins, the rest
// surface ErrDuplicateRoomName with no state mutated.
func (d *Database) CreateRoom(room *models.Room) error {
	if err := d.db.Create(room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrDuplicateRoomName
		}
		return err
	}
	return nil
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	if err := d.db.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindRoomByName matches the exact name, case-insensitively.
func (d *Database) FindRoomByName(name string) (*models.Room, error) {
	var room models.Room
	if err := d.db.Where("LOWER(name) = LOWER(?)", name).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (d *Database) ListPublicRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := d.db.Where("is_private = ?", false).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
