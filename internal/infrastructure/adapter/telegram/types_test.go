package telegram

import (
	"testing"

	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/chat"
	"github.com/stretchr/testify/assert"
)

func TestUpdateToChat(t *testing.T) {
	t.Run("Text message", func(t *testing.T) {
		upd, ok := Update{
			UpdateID: 1,
			Message: &Message{
				MessageID: 3,
				From:      &User{ID: 42, FirstName: "Alice", Username: "alice"},
				Chat:      Chat{ID: 42, Type: "private"},
				Text:      "/pay",
			},
		}.ToChat()

		assert.True(t, ok)
		assert.Equal(t, chat.Update{UpdateID: 1, ChatID: 42, UserID: 42, Username: "alice", Text: "/pay", MessageID: 3}, upd)
	})

	t.Run("Callback falls back to first name", func(t *testing.T) {
		upd, ok := Update{
			UpdateID: 2,
			CallbackQuery: &CallbackQuery{
				ID:      "cb-1",
				From:    User{ID: 42, FirstName: "Alice"},
				Message: &Message{MessageID: 9, Chat: Chat{ID: 500}},
				Data:    "en",
			},
		}.ToChat()

		assert.True(t, ok)
		assert.Equal(t, chat.Update{
			UpdateID: 2, ChatID: 500, UserID: 42, Username: "Alice", MessageID: 9,
			CallbackID: "cb-1", CallbackData: "en",
		}, upd)
		assert.True(t, upd.IsCallback())
	})

	t.Run("Unsupported updates are skipped", func(t *testing.T) {
		_, ok := Update{UpdateID: 3}.ToChat()
		assert.False(t, ok)

		_, ok = Update{UpdateID: 4, Message: &Message{Chat: Chat{ID: 1}, Text: "from channel"}}.ToChat()
		assert.False(t, ok)
	})
}
