package telegram

import (
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/chat"
)

// Update is the subset of a Bot API update the bot consumes
type Update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Message is an incoming or sent chat message
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      Chat   `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text,omitempty"`
}

// User is a Telegram user or bot
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// Chat identifies the conversation a message belongs to
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CallbackQuery is an inline keyboard button press
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

// InlineKeyboardButton is a button attached to a message
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// InlineKeyboardMarkup is an inline keyboard attached to a message
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

func keyboardMarkup(rows [][]gateway.Button) *InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	markup := &InlineKeyboardMarkup{InlineKeyboard: make([][]InlineKeyboardButton, 0, len(rows))}
	for _, row := range rows {
		buttons := make([]InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, InlineKeyboardButton{Text: b.Text, CallbackData: b.Data})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}

// ToChat converts a Bot API update into a router update.
// ok is false for update kinds the bot does not handle.
func (u Update) ToChat() (chat.Update, bool) {
	switch {
	case u.CallbackQuery != nil:
		cq := u.CallbackQuery
		upd := chat.Update{
			UpdateID:     u.UpdateID,
			ChatID:       cq.From.ID,
			UserID:       cq.From.ID,
			Username:     nameOf(cq.From),
			CallbackID:   cq.ID,
			CallbackData: cq.Data,
		}
		if cq.Message != nil {
			upd.ChatID = cq.Message.Chat.ID
			upd.MessageID = cq.Message.MessageID
		}
		return upd, true
	case u.Message != nil && u.Message.From != nil && u.Message.Text != "":
		m := u.Message
		return chat.Update{
			UpdateID:  u.UpdateID,
			ChatID:    m.Chat.ID,
			UserID:    m.From.ID,
			Username:  nameOf(*m.From),
			Text:      m.Text,
			MessageID: m.MessageID,
		}, true
	default:
		return chat.Update{}, false
	}
}

func nameOf(u User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}
