package gateway

import "context"

// Button is an inline keyboard button carrying callback data
type Button struct {
	Text string
	Data string
}

// Reply is an outgoing chat message with an optional inline keyboard
type Reply struct {
	Text     string
	Keyboard [][]Button
}

// Responder sends replies back over the chat transport
type Responder interface {
	// Send posts a new message to the chat
	Send(ctx context.Context, chatID int64, reply Reply) error

	// Edit replaces the text of a message the bot sent earlier
	Edit(ctx context.Context, chatID int64, messageID int64, reply Reply) error

	// AnswerCallback acknowledges a button press; alert shows the text as a modal
	AnswerCallback(ctx context.Context, callbackID string, text string, alert bool) error
}
