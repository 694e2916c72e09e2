package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playverse/backend/internal/apperr"
)

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors become an opaque 500; the underlying cause is never leaked.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, apperr.ErrPasswordRequired),
		errors.Is(err, apperr.ErrInvalidPassword):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, apperr.ErrRoomNotFound),
		errors.Is(err, apperr.ErrUserNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, apperr.ErrDuplicateRoomName):
		status = http.StatusConflict
		msg = err.Error()
	}

	c.JSON(status, gin.H{"success": false, "error": msg})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}
