package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playverse/backend/internal/apperr"
	"github.com/playverse/backend/internal/database"
	"github.com/playverse/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxMessageLen       = 5000
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

// Identity is a verified caller, as extracted from a bearer token. A nil
// *Identity means the caller is a guest.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// RoomService owns no state of its own; it composes the room directory, the
// membership sets and the message store behind the HTTP surface.
type RoomService struct {
	db *database.Database
}

func NewRoomService(db *database.Database) *RoomService {
	return &RoomService{db: db}
}

type CreateRoomInput struct {
	Name       string
	Type       string
	IsPrivate  bool
	Password   string
	MaxPlayers int
	CreatedBy  uuid.UUID
}

// CreateRoom validates the type, clamps the requested capacity to the type's
// ceiling, hashes the password for private rooms and grants the creator
// membership in both createdRooms and allowedRooms.
func (s *RoomService) CreateRoom(in CreateRoomInput) (*models.Room, error) {
	roomType, err := models.ParseRoomType(in.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	maxPlayers := roomType.Capacity()
	if in.MaxPlayers > 0 && in.MaxPlayers < maxPlayers {
		maxPlayers = in.MaxPlayers
	}

	room := &models.Room{
		Name:       in.Name,
		Type:       roomType,
		MaxPlayers: maxPlayers,
		IsPrivate:  in.IsPrivate,
		CreatedBy:  in.CreatedBy,
		CreatedAt:  time.Now(),
	}

	if in.IsPrivate && in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		room.PasswordHash = string(hash)
	}

	if err := s.db.CreateRoom(room); err != nil {
		return nil, err
	}

	if err := s.db.GrantCreatedRoom(in.CreatedBy.String(), room); err != nil {
		return nil, err
	}

	return room, nil
}

// JoinRoom decides whether the caller may enter the room.
//
// Public rooms admit anyone; a verified caller additionally gets the room
// recorded in their allowed set so it shows up in their room list. Private
// rooms admit guests without recording anything. A verified caller who
// already holds the room in their allowed set re-enters without a password;
// everyone else must present the correct one, which then grants persistent
// membership.
func (s *RoomService) JoinRoom(roomID string, identity *Identity, password string) (*models.Room, error) {
	room, err := s.db.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	if !room.IsPrivate {
		if identity != nil {
			if err := s.db.AddAllowedRoom(identity.UserID.String(), room); err != nil {
				return nil, err
			}
		}
		return room, nil
	}

	if identity == nil {
		return room, nil
	}

	allowed, err := s.db.HasAllowedRoom(identity.UserID.String(), room.ID.String())
	if err != nil {
		return nil, err
	}
	if !allowed {
		if password == "" {
			return nil, apperr.ErrPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(room.PasswordHash), []byte(password)); err != nil {
			return nil, apperr.ErrInvalidPassword
		}
	}

	if err := s.db.AddAllowedRoom(identity.UserID.String(), room); err != nil {
		return nil, err
	}

	return room, nil
}

// LeaveRoom removes the room from the caller's allowed set. Leaving a room
// the caller never joined is a successful no-op.
func (s *RoomService) LeaveRoom(roomID string, userID uuid.UUID) error {
	room, err := s.db.GetRoom(roomID)
	if err != nil {
		return err
	}
	return s.db.RemoveAllowedRoom(userID.String(), room)
}

// RoomsForUser returns the union of the user's created and allowed rooms,
// de-duplicated by room id.
func (s *RoomService) RoomsForUser(userID uuid.UUID) ([]models.Room, error) {
	user, err := s.db.GetUserWithRooms(userID.String())
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	rooms := make([]models.Room, 0, len(user.CreatedRooms)+len(user.AllowedRooms))
	for _, r := range user.CreatedRooms {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		rooms = append(rooms, r)
	}
	for _, r := range user.AllowedRooms {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		rooms = append(rooms, r)
	}

	return rooms, nil
}

type AppendMessageInput struct {
	MessageID   string
	RoomID      *uuid.UUID
	SenderID    string
	SenderName  string
	Text        string
	CreatedAt   *time.Time
	IsPrivate   bool
	RecipientID string
}

// AppendMessage validates and stores a message. Re-submitting an already
// stored messageId returns the original message untouched.
func (s *RoomService) AppendMessage(in AppendMessageInput) (*models.Message, error) {
	switch {
	case in.MessageID == "":
		return nil, fmt.Errorf("%w: messageId is required", apperr.ErrValidation)
	case in.SenderID == "":
		return nil, fmt.Errorf("%w: senderId is required", apperr.ErrValidation)
	case in.SenderName == "":
		return nil, fmt.Errorf("%w: senderName is required", apperr.ErrValidation)
	case in.Text == "":
		return nil, fmt.Errorf("%w: text is required", apperr.ErrValidation)
	case len(in.Text) > maxMessageLen:
		return nil, fmt.Errorf("%w: text exceeds %d characters", apperr.ErrValidation, maxMessageLen)
	case in.IsPrivate && in.RecipientID == "":
		return nil, fmt.Errorf("%w: recipientId is required for private messages", apperr.ErrValidation)
	}

	createdAt := time.Now()
	if in.CreatedAt != nil {
		createdAt = *in.CreatedAt
	}

	msg := &models.Message{
		MessageID:   in.MessageID,
		RoomID:      in.RoomID,
		SenderID:    in.SenderID,
		SenderName:  in.SenderName,
		Text:        in.Text,
		CreatedAt:   createdAt,
		IsPrivate:   in.IsPrivate,
		RecipientID: in.RecipientID,
	}

	return s.db.SaveMessage(msg)
}

// RoomMessages returns the room's broadcast history, newest first.
func (s *RoomService) RoomMessages(roomID string, limit int, before *time.Time) ([]models.Message, error) {
	return s.db.GetRoomMessages(roomID, clampLimit(limit), before)
}

// PrivateMessages returns the two-party thread, newest first.
func (s *RoomService) PrivateMessages(userA, userB string, limit int, before *time.Time) ([]models.Message, error) {
	return s.db.GetPrivateMessages(userA, userB, clampLimit(limit), before)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultMessageLimit
	}
	if limit > maxMessageLimit {
		return maxMessageLimit
	}
	return limit
}

// PublicRooms lists all non-private rooms.
func (s *RoomService) PublicRooms() ([]models.Room, error) {
	return s.db.ListPublicRooms()
}

// FindRoom matches the exact name, ignoring case.
func (s *RoomService) FindRoom(name string) (*models.Room, error) {
	return s.db.FindRoomByName(name)
}
