package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/playverse/backend/internal/database"
	"github.com/playverse/backend/internal/handlers/dto"
	"github.com/playverse/backend/internal/middleware"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// GetMe returns the caller's profile including both room membership sets.
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.GetUserWithRooms(userID.String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"coins":        user.Coins,
		"createdRooms": dto.NewRoomResponses(user.CreatedRooms),
		"allowedRooms": dto.NewRoomResponses(user.AllowedRooms),
	})
}

// ListUsers returns all users without password hashes.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]gin.H, len(users))
	for i, user := range users {
		result[i] = gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"coins":    user.Coins,
		}
	}

	c.JSON(http.StatusOK, result)
}

// GetCoins returns the coin balance for a username.
func (h *UserHandler) GetCoins(c *gin.Context) {
	user, err := h.db.FindUserByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "coins": user.Coins})
}

// UpdateCoins applies a signed delta to a user's coin balance.
func (h *UserHandler) UpdateCoins(c *gin.Context) {
	var req dto.CoinsChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.db.FindUserByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.db.AddCoins(user.ID.String(), *req.CoinsChange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User coins updated successfully",
		"coins":   updated.Coins,
	})
}
