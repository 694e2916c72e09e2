package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/playverse/backend/internal/models"
)

// PostMessageRequest carries a client-generated messageId used as the
// idempotency key. Any client-supplied sender id is ignored; the verified
// identity always wins.
type PostMessageRequest struct {
	MessageID   string     `json:"messageId" binding:"required"`
	SenderName  string     `json:"senderName" binding:"required"`
	Text        string     `json:"text" binding:"required"`
	CreatedAt   *time.Time `json:"createdAt"`
	IsPrivate   bool       `json:"isPrivate"`
	RecipientID string     `json:"recipientId"`
}

type MessageResponse struct {
	MessageID   string     `json:"messageId"`
	RoomID      *uuid.UUID `json:"room,omitempty"`
	SenderID    string     `json:"senderId"`
	SenderName  string     `json:"senderName"`
	Text        string     `json:"text"`
	CreatedAt   time.Time  `json:"createdAt"`
	IsPrivate   bool       `json:"isPrivate"`
	RecipientID string     `json:"recipientId,omitempty"`
}

func NewMessageResponse(msg *models.Message) MessageResponse {
	return MessageResponse{
		MessageID:   msg.MessageID,
		RoomID:      msg.RoomID,
		SenderID:    msg.SenderID,
		SenderName:  msg.SenderName,
		Text:        msg.Text,
		CreatedAt:   msg.CreatedAt,
		IsPrivate:   msg.IsPrivate,
		RecipientID: msg.RecipientID,
	}
}

func NewMessageResponses(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, len(messages))
	for i := range messages {
		out[i] = NewMessageResponse(&messages[i])
	}
	return out
}
