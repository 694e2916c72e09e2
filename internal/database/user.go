package database

import (
	"errors"

	"github.com/playverse/backend/internal/apperr"
	"github.com/playverse/backend/internal/models"
	"gorm.io/gorm"
)

func (d *Database) SaveUser(user *models.User) error {
	return d.db.Create(user).Error
}

func (d *Database) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := d.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddCoins applies a signed delta to the user's coin balance.
func (d *Database) AddCoins(userID string, delta int) (*models.User, error) {
	res := d.db.Model(&models.User{}).Where("id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrUserNotFound
	}
	return d.GetUser(userID)
}

// GetUserWithRooms loads the user together with both membership sets.
func (d *Database) GetUserWithRooms(id string) (*models.User, error) {
	var user models.User
	err := d.db.Preload("CreatedRooms").Preload("AllowedRooms").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GrantCreatedRoom records room creation on the creator: the room lands in
// both createdRooms and allowedRooms.
func (d *Database) GrantCreatedRoom(userID string, room *models.Room) error {
	user, err := d.GetUser(userID)
	if err != nil {
		return err
	}
	if err := d.db.Model(user).Association("CreatedRooms").Append(room); err != nil {
		return err
	}
	return d.db.Model(user).Association("AllowedRooms").Append(room)
}

// AddAllowedRoom is idempotent: appending an already-present room is a no-op.
func (d *Database) AddAllowedRoom(userID string, room *models.Room) error {
	user, err := d.GetUser(userID)
	if err != nil {
		return err
	}
	return d.db.Model(user).Association("AllowedRooms").Append(room)
}

// RemoveAllowedRoom is idempotent: removing an absent room is a no-op.
func (d *Database) RemoveAllowedRoom(userID string, room *models.Room) error {
	user, err := d.GetUser(userID)
	if err != nil {
		return err
	}
	return d.db.Model(user).Association("AllowedRooms").Delete(room)
}

// HasAllowedRoom reports whether the room is in the user's allowed set.
func (d *Database) HasAllowedRoom(userID, roomID string) (bool, error) {
	var n int64
	err := d.db.Table("user_allowed_rooms").
		Where("user_id = ? AND room_id = ?", userID, roomID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
