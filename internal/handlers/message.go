package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/playverse/backend/internal/handlers/dto"
	"github.com/playverse/backend/internal/middleware"
	"github.com/playverse/backend/internal/services"
)

type MessageHandler struct {
	svc *services.RoomService
}

func NewMessageHandler(svc *services.RoomService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// GetRoomMessages returns a room's broadcast history, newest first, with
// cursor pagination on createdAt.
func (h *MessageHandler) GetRoomMessages(c *gin.Context) {
	limit, before, err := paginationParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	messages, err := h.svc.RoomMessages(c.Param("roomId"), limit, before)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": dto.NewMessageResponses(messages)})
}

// PostMessage stores a message idempotently. The sender is always the
// verified caller.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		respondBadRequest(c, errors.New("invalid room id"))
		return
	}

	msg, err := h.svc.AppendMessage(services.AppendMessageInput{
		MessageID:   req.MessageID,
		RoomID:      &roomID,
		SenderID:    userID.String(),
		SenderName:  req.SenderName,
		Text:        req.Text,
		CreatedAt:   req.CreatedAt,
		IsPrivate:   req.IsPrivate,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": dto.NewMessageResponse(msg)})
}

// GetPrivateMessages returns the two-party thread between userA and userB,
// newest first.
func (h *MessageHandler) GetPrivateMessages(c *gin.Context) {
	limit, before, err := paginationParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	messages, err := h.svc.PrivateMessages(c.Param("userA"), c.Param("userB"), limit, before)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": dto.NewMessageResponses(messages)})
}

func paginationParams(c *gin.Context) (int, *time.Time, error) {
	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			return 0, nil, errors.New("limit must be an integer")
		}
		limit = parsed
	}

	var before *time.Time
	if b := c.Query("before"); b != "" {
		parsed, err := time.Parse(time.RFC3339, b)
		if err != nil {
			return 0, nil, errors.New("before must be an RFC3339 timestamp")
		}
		before = &parsed
	}

	return limit, before, nil
}
