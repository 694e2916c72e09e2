package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playverse/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func roomMsg(id string, roomID uuid.UUID, createdAt time.Time) *models.Message {
	return &models.Message{
		MessageID:  id,
		RoomID:     &roomID,
		SenderID:   "sender-1",
		SenderName: "alice",
		Text:       "hello " + id,
		CreatedAt:  createdAt,
	}
}

func TestSaveMessageIdempotent(t *testing.T) {
	d := newTestDB(t)
	roomID := uuid.New()

	first, err := d.SaveMessage(roomMsg("m-1", roomID, time.Now()))
	require.NoError(t, err)
	require.Equal(t, "hello m-1", first.Text)

	// same id, different payload: original wins, nothing is overwritten
	dup := roomMsg("m-1", roomID, time.Now().Add(time.Hour))
	dup.Text = "something else entirely"
	second, err := d.SaveMessage(dup)
	require.NoError(t, err)
	require.Equal(t, first.Text, second.Text)
	require.WithinDuration(t, first.CreatedAt, second.CreatedAt, time.Second)

	messages, err := d.GetRoomMessages(roomID.String(), 50, nil)
	require.NoError(t, err)
	require.Len(t, messages, 1)
}

func TestGetRoomMessagesNewestFirstWithCursor(t *testing.T) {
	d := newTestDB(t)
	roomID := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := d.SaveMessage(roomMsg(fmt.Sprintf("m-%d", i), roomID, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	messages, err := d.GetRoomMessages(roomID.String(), 50, nil)
	require.NoError(t, err)
	require.Len(t, messages, 5)
	for i := 1; i < len(messages); i++ {
		require.True(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt),
			"expected strictly descending createdAt")
	}

	// exclusive cursor: the message at the cursor and everything newer is gone
	cursor := base.Add(2 * time.Minute)
	older, err := d.GetRoomMessages(roomID.String(), 50, &cursor)
	require.NoError(t, err)
	require.Len(t, older, 2)
	require.Equal(t, "m-1", older[0].MessageID)
	require.Equal(t, "m-0", older[1].MessageID)

	limited, err := d.GetRoomMessages(roomID.String(), 2, nil)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, "m-4", limited[0].MessageID)
}

func TestGetRoomMessagesExcludesPrivate(t *testing.T) {
	d := newTestDB(t)
	roomID := uuid.New()

	_, err := d.SaveMessage(roomMsg("public-1", roomID, time.Now()))
	require.NoError(t, err)

	private := roomMsg("private-1", roomID, time.Now())
	private.IsPrivate = true
	private.RecipientID = "sender-2"
	_, err = d.SaveMessage(private)
	require.NoError(t, err)

	messages, err := d.GetRoomMessages(roomID.String(), 50, nil)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, "public-1", messages[0].MessageID)
}

func TestGetPrivateMessagesSymmetric(t *testing.T) {
	d := newTestDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	save := func(id, from, to string, at time.Time) {
		_, err := d.SaveMessage(&models.Message{
			MessageID:   id,
			SenderID:    from,
			SenderName:  from,
			Text:        "hi",
			CreatedAt:   at,
			IsPrivate:   true,
			RecipientID: to,
		})
		require.NoError(t, err)
	}

	save("p-1", "alice", "bob", base)
	save("p-2", "bob", "alice", base.Add(time.Minute))
	save("p-3", "alice", "carol", base.Add(2*time.Minute)) // different thread

	forward, err := d.GetPrivateMessages("alice", "bob", 50, nil)
	require.NoError(t, err)
	reverse, err := d.GetPrivateMessages("bob", "alice", 50, nil)
	require.NoError(t, err)

	require.Equal(t, forward, reverse)
	require.Len(t, forward, 2)
	require.Equal(t, "p-2", forward[0].MessageID)
	require.Equal(t, "p-1", forward[1].MessageID)
}
