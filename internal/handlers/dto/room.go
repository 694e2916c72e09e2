package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/playverse/backend/internal/models"
)

type CreateRoomRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	IsPrivate  bool   `json:"isPrivate"`
	Password   string `json:"password"`
	MaxPlayers int    `json:"maxPlayers"`
}

type JoinRoomRequest struct {
	Password string `json:"password"`
}

// RoomResponse is the wire shape of a room; the password hash never leaves
// the server.
type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	MaxPlayers int       `json:"maxPlayers"`
	IsPrivate  bool      `json:"isPrivate"`
	CreatedBy  uuid.UUID `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewRoomResponse(room *models.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID,
		Name:       room.Name,
		Type:       string(room.Type),
		MaxPlayers: room.MaxPlayers,
		IsPrivate:  room.IsPrivate,
		CreatedBy:  room.CreatedBy,
		CreatedAt:  room.CreatedAt,
	}
}

func NewRoomResponses(rooms []models.Room) []RoomResponse {
	out := make([]RoomResponse, len(rooms))
	for i := range rooms {
		out[i] = NewRoomResponse(&rooms[i])
	}
	return out
}
