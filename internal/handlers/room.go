package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/playverse/backend/internal/handlers/dto"
	"github.com/playverse/backend/internal/middleware"
	"github.com/playverse/backend/internal/services"
)

type RoomHandler struct {
	svc *services.RoomService
}

func NewRoomHandler(svc *services.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// CreateRoom creates a room owned by the authenticated caller.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	room, err := h.svc.CreateRoom(services.CreateRoomInput{
		Name:       req.Name,
		Type:       req.Type,
		IsPrivate:  req.IsPrivate,
		Password:   req.Password,
		MaxPlayers: req.MaxPlayers,
		CreatedBy:  userID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "room": dto.NewRoomResponse(room)})
}

// ListRooms returns all public rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.svc.PublicRooms()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": dto.NewRoomResponses(rooms)})
}

// FindRoom looks a room up by exact name, case-insensitively.
func (h *RoomHandler) FindRoom(c *gin.Context) {
	room, err := h.svc.FindRoom(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "room": dto.NewRoomResponse(room)})
}

// GetMyRooms returns the union of the caller's created and allowed rooms.
func (h *RoomHandler) GetMyRooms(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	rooms, err := h.svc.RoomsForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": dto.NewRoomResponses(rooms)})
}

// JoinRoom admits the caller into the room. Identity is optional: requests
// without a bearer token are treated as guests.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req dto.JoinRoomRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	var identity *services.Identity
	if v, ok := c.Get(middleware.UserIDKey); ok {
		identity = &services.Identity{
			UserID:   v.(uuid.UUID),
			Username: c.GetString(middleware.UsernameKey),
		}
	}

	room, err := h.svc.JoinRoom(c.Param("roomId"), identity, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"room":    dto.NewRoomResponse(room),
		"message": "Successfully joined room.",
	})
}

// LeaveRoom removes the room from the caller's allowed set; leaving a room
// the caller is not in succeeds quietly.
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	if err := h.svc.LeaveRoom(c.Param("roomId"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Left room successfully"})
}
