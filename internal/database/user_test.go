package database

import (
	"testing"
	"time"

	"github.com/playverse/backend/internal/apperr"
	"github.com/playverse/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, d *Database, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, d.SaveUser(user))
	return user
}

func TestAllowedRoomAddRemoveIdempotent(t *testing.T) {
	d := newTestDB(t)
	user := newUser(t, d, "alice")
	room := newRoom("hangout", false)
	require.NoError(t, d.CreateRoom(room))

	// removing before adding is a successful no-op
	require.NoError(t, d.RemoveAllowedRoom(user.ID.String(), room))

	require.NoError(t, d.AddAllowedRoom(user.ID.String(), room))
	require.NoError(t, d.AddAllowedRoom(user.ID.String(), room))

	loaded, err := d.GetUserWithRooms(user.ID.String())
	require.NoError(t, err)
	require.Len(t, loaded.AllowedRooms, 1)

	ok, err := d.HasAllowedRoom(user.ID.String(), room.ID.String())
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.RemoveAllowedRoom(user.ID.String(), room))
	require.NoError(t, d.RemoveAllowedRoom(user.ID.String(), room))

	ok, err = d.HasAllowedRoom(user.ID.String(), room.ID.String())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGrantCreatedRoomFillsBothSets(t *testing.T) {
	d := newTestDB(t)
	user := newUser(t, d, "alice")
	room := newRoom("workshop", true)
	require.NoError(t, d.CreateRoom(room))

	require.NoError(t, d.GrantCreatedRoom(user.ID.String(), room))

	loaded, err := d.GetUserWithRooms(user.ID.String())
	require.NoError(t, err)
	require.Len(t, loaded.CreatedRooms, 1)
	require.Len(t, loaded.AllowedRooms, 1)
	require.Equal(t, room.ID, loaded.CreatedRooms[0].ID)
}

func TestFindUserByUsername(t *testing.T) {
	d := newTestDB(t)
	newUser(t, d, "alice")

	user, err := d.FindUserByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	_, err = d.FindUserByUsername("nobody")
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestAddCoins(t *testing.T) {
	d := newTestDB(t)
	user := newUser(t, d, "alice")

	updated, err := d.AddCoins(user.ID.String(), 25)
	require.NoError(t, err)
	require.Equal(t, 25, updated.Coins)

	updated, err = d.AddCoins(user.ID.String(), -10)
	require.NoError(t, err)
	require.Equal(t, 15, updated.Coins)

	_, err = d.AddCoins("00000000-0000-0000-0000-000000000000", 5)
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
}
