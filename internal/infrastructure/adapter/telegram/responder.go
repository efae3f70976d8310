package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
)

var (
	_ gateway.Responder = (*Client)(nil)
	_ gateway.Notifier  = (*Client)(nil)
)

// Send implements gateway.Responder
func (c *Client) Send(ctx context.Context, chatID int64, reply gateway.Reply) error {
	_, err := c.SendMessage(ctx, chatID, reply.Text, keyboardMarkup(reply.Keyboard))
	return err
}

// Edit implements gateway.Responder. Editing to identical content is not an error.
func (c *Client) Edit(ctx context.Context, chatID int64, messageID int64, reply gateway.Reply) error {
	err := c.EditMessageText(ctx, chatID, messageID, reply.Text, keyboardMarkup(reply.Keyboard))
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.Contains(apiErr.Description, "message is not modified") {
		return nil
	}
	return err
}

// AnswerCallback implements gateway.Responder
func (c *Client) AnswerCallback(ctx context.Context, callbackID string, text string, alert bool) error {
	return c.AnswerCallbackQuery(ctx, callbackID, text, alert)
}

// Notify implements gateway.Notifier. The user's private chat shares the user ID.
func (c *Client) Notify(ctx context.Context, userID int64, text string) error {
	if _, err := c.SendMessage(ctx, userID, text, nil); err != nil {
		c.logger.Debug("Notification send failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}
	return nil
}
